package fields

import (
	"fieldkit/internal/domain"
	"fieldkit/internal/ui/logic"
)

const defaultVisibleRows = 5

// optionList is the cursor and scroll window shared by the select fields
type optionList struct {
	options []domain.Option
	nav     *logic.Navigator
}

func newOptionList(options []domain.Option, sortMode logic.SortMode, height int) *optionList {
	if height <= 0 {
		height = defaultVisibleRows
	}
	l := &optionList{
		options: logic.SortOptions(options, sortMode),
		nav:     logic.NewNavigator(height),
	}
	l.nav.Reset(len(l.options))
	return l
}

func (l *optionList) cursor() int {
	return l.nav.Selected()
}

// moveTo puts the cursor on the option with value, if present
func (l *optionList) moveTo(value string) {
	for i, o := range l.options {
		if o.Value == value {
			l.nav.SetSelectedIndex(i)
			return
		}
	}
}

// move steps the cursor, skipping disabled options
func (l *optionList) move(delta int) {
	for range l.options {
		var i int
		if delta > 0 {
			i = l.nav.Next()
		} else {
			i = l.nav.Prev()
		}
		if i < 0 || !l.options[i].Disabled {
			return
		}
	}
}

// current returns the option under the cursor when it can be chosen
func (l *optionList) current() (domain.Option, bool) {
	i := l.nav.Selected()
	if i < 0 || i >= len(l.options) || l.options[i].Disabled {
		return domain.Option{}, false
	}
	return l.options[i], true
}

func (l *optionList) records(selected func(domain.Option) bool, focused bool) []domain.OptionRecord {
	out := make([]domain.OptionRecord, len(l.options))
	for i, o := range l.options {
		out[i] = domain.OptionRecord{
			Kind:        domain.RecordOption,
			Value:       o.Value,
			Label:       o.DisplayLabel(),
			Selected:    selected(o),
			Highlighted: focused && i == l.nav.Selected(),
			Disabled:    o.Disabled,
		}
	}
	return out
}

func (l *optionList) label(value string) string {
	for _, o := range l.options {
		if o.Value == value {
			return o.DisplayLabel()
		}
	}
	return value
}
