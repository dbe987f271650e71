package logic

import (
	"fmt"
	"sort"
	"strings"

	"fieldkit/internal/domain"
)

// SortMode represents the order a static option list is presented in
type SortMode int

const (
	SortNone SortMode = iota
	SortByLabel
	SortByValue
)

// String returns the config name of the mode
func (m SortMode) String() string {
	switch m {
	case SortByLabel:
		return "label"
	case SortByValue:
		return "value"
	default:
		return "none"
	}
}

// ParseSortMode parses a config name; empty means SortNone
func ParseSortMode(name string) (SortMode, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return SortNone, nil
	case "label":
		return SortByLabel, nil
	case "value":
		return SortByValue, nil
	}
	return SortNone, fmt.Errorf("unknown sort mode %q", name)
}

// SortCandidates returns a sorted copy. Ties keep source order.
func SortCandidates(candidates []domain.Candidate, mode SortMode) []domain.Candidate {
	out := domain.CloneCandidates(candidates)
	switch mode {
	case SortByLabel:
		sort.SliceStable(out, func(i, j int) bool {
			return Fold(out[i].DisplayLabel()) < Fold(out[j].DisplayLabel())
		})
	case SortByValue:
		sort.SliceStable(out, func(i, j int) bool {
			return Fold(out[i].Value) < Fold(out[j].Value)
		})
	}
	return out
}

// SortOptions orders select options the same way
func SortOptions(options []domain.Option, mode SortMode) []domain.Option {
	out := make([]domain.Option, len(options))
	copy(out, options)
	switch mode {
	case SortByLabel:
		sort.SliceStable(out, func(i, j int) bool {
			return Fold(out[i].DisplayLabel()) < Fold(out[j].DisplayLabel())
		})
	case SortByValue:
		sort.SliceStable(out, func(i, j int) bool {
			return Fold(out[i].Value) < Fold(out[j].Value)
		})
	}
	return out
}
