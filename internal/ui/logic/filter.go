package logic

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"fieldkit/internal/domain"
)

// Policy selects how input text is matched against candidates
type Policy string

const (
	PolicyContains          Policy = "contains"
	PolicyStartsWith        Policy = "startsWith"
	PolicyStartsWithPerTerm Policy = "startsWithPerTerm"
	PolicyFuzzy             Policy = "fuzzy"
)

// ErrUnknownPolicy is returned by ParsePolicy for unsupported names
var ErrUnknownPolicy = errors.New("unknown filter policy")

// Policies lists the supported policies in display order
var Policies = []Policy{PolicyContains, PolicyStartsWith, PolicyStartsWithPerTerm, PolicyFuzzy}

// ParsePolicy validates a policy name; empty means contains
func ParsePolicy(name string) (Policy, error) {
	if name == "" {
		return PolicyContains, nil
	}
	for _, p := range Policies {
		if strings.EqualFold(string(p), name) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Fold normalises text for case-insensitive comparison.
// A Caser carries state, so each call gets its own.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Match returns the candidates matching text under policy, at most limit of them.
// Source order is preserved for every policy except fuzzy, which orders by score
// and breaks ties by source order. A non-positive limit means no bound.
func Match(candidates []domain.Candidate, text string, policy Policy, limit int) []domain.Candidate {
	if text == "" {
		return Truncate(candidates, limit)
	}
	if policy == PolicyFuzzy {
		return fuzzyMatch(candidates, text, limit)
	}

	query := Fold(text)
	terms := strings.Fields(query)
	out := make([]domain.Candidate, 0, minInt(len(candidates), limitOr(limit, len(candidates))))
	for _, c := range candidates {
		if limit > 0 && len(out) >= limit {
			break
		}
		if matches(c, query, terms, policy) {
			out = append(out, c)
		}
	}
	return out
}

// Truncate bounds candidates to limit without filtering. The result never aliases the input.
func Truncate(candidates []domain.Candidate, limit int) []domain.Candidate {
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return domain.CloneCandidates(candidates)
}

func matches(c domain.Candidate, query string, terms []string, policy Policy) bool {
	label := Fold(c.DisplayLabel())
	value := Fold(c.Value)

	switch policy {
	case PolicyStartsWith:
		return strings.HasPrefix(label, query) || strings.HasPrefix(value, query)
	case PolicyStartsWithPerTerm:
		if len(terms) == 0 {
			return true
		}
		words := Words(label)
		for _, term := range terms {
			if !anyHasPrefix(words, term) {
				return false
			}
		}
		return true
	default:
		return strings.Contains(label, query) || strings.Contains(value, query)
	}
}

// Words splits text on every rune that is not a letter or digit
func Words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func anyHasPrefix(words []string, prefix string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

// foldedField adapts one candidate field to fuzzy.Source
type foldedField []string

func (f foldedField) String(i int) string { return f[i] }
func (f foldedField) Len() int            { return len(f) }

func fuzzyMatch(candidates []domain.Candidate, text string, limit int) []domain.Candidate {
	labels := make(foldedField, len(candidates))
	values := make(foldedField, len(candidates))
	for i, c := range candidates {
		labels[i] = Fold(c.DisplayLabel())
		values[i] = Fold(c.Value)
	}
	pattern := Fold(text)

	best := make(map[int]int, len(candidates))
	for _, field := range []foldedField{labels, values} {
		for _, m := range fuzzy.FindFrom(pattern, field) {
			if score, ok := best[m.Index]; !ok || m.Score > score {
				best[m.Index] = m.Score
			}
		}
	}

	indices := make([]int, 0, len(best))
	for i := range best {
		indices = append(indices, i)
	}
	sort.Slice(indices, func(a, b int) bool {
		ia, ib := indices[a], indices[b]
		if best[ia] != best[ib] {
			return best[ia] > best[ib]
		}
		return ia < ib
	})

	if limit > 0 && len(indices) > limit {
		indices = indices[:limit]
	}
	out := make([]domain.Candidate, len(indices))
	for i, idx := range indices {
		out[i] = candidates[idx]
	}
	return out
}

func limitOr(limit, fallback int) int {
	if limit > 0 {
		return limit
	}
	return fallback
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
