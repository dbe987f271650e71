package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"fieldkit/internal/domain"
)

const (
	loadingText = "Loading…"
	emptyText   = "No results"
	ellipsis    = "…"
)

// RenderDropdown renders one line per record. Line i is record i, which is
// what surfaces rely on for pointer hit-testing.
func RenderDropdown(records []domain.OptionRecord, width int, styles *Styles) []string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, RenderRecord(rec, width, styles))
	}
	return lines
}

// RenderRecord renders a single dropdown row, fitted to width cells
func RenderRecord(rec domain.OptionRecord, width int, styles *Styles) string {
	// two cells of left padding in every row style
	avail := width - 2
	if avail < 1 {
		avail = 1
	}

	switch rec.Kind {
	case domain.RecordLoading:
		return styles.OptionLoading.Render(fit(loadingText, avail))
	case domain.RecordEmpty:
		return styles.OptionEmpty.Render(fit(emptyText, avail))
	}

	label := rec.Label
	if label == "" {
		label = rec.Value
	}
	text := runewidth.Truncate(label, avail, ellipsis)

	detail := ""
	if rec.Description != "" {
		if room := avail - runewidth.StringWidth(text) - 2; room > 3 {
			detail = "  " + runewidth.Truncate(rec.Description, room, ellipsis)
		}
	}

	style := styles.Option
	switch {
	case rec.Disabled:
		style = styles.Option.Inherit(styles.Disabled)
	case rec.Highlighted:
		style = styles.OptionHighlighted
	case rec.Selected:
		style = styles.OptionSelected
	}

	row := text
	if detail != "" && !rec.Highlighted {
		row += styles.OptionDetail.Render(detail)
	} else {
		row += detail
	}
	pad := avail - runewidth.StringWidth(text) - runewidth.StringWidth(detail)
	if pad > 0 {
		row += strings.Repeat(" ", pad)
	}
	return style.Render(row)
}

// RenderWindow renders records[start:end] with scroll hints for hidden rows above and below
func RenderWindow(records []domain.OptionRecord, start, end, width int, styles *Styles) []string {
	if start < 0 {
		start = 0
	}
	if end > len(records) {
		end = len(records)
	}
	var lines []string
	if start > 0 {
		lines = append(lines, styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", start)))
	}
	for _, rec := range records[start:end] {
		lines = append(lines, RenderRecord(rec, width, styles))
	}
	if hidden := len(records) - end; hidden > 0 {
		lines = append(lines, styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", hidden)))
	}
	return lines
}

func fit(s string, width int) string {
	s = runewidth.Truncate(s, width, ellipsis)
	if w := runewidth.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
