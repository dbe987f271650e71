package ui

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"fieldkit/internal/domain"
	"fieldkit/internal/ui/logic"
	"fieldkit/internal/ui/services/source"
)

//go:embed data.toml
var demoData []byte

// errRegistryDown is returned by the package search for queries starting with "!"
var errRegistryDown = errors.New("package registry unavailable")

type entry struct {
	Value       string `toml:"value"`
	Label       string `toml:"label"`
	Description string `toml:"description"`
	Disabled    bool   `toml:"disabled"`
}

// DemoData holds the lists behind the demo form
type DemoData struct {
	Languages  []domain.Candidate
	Packages   []domain.Candidate
	Frameworks []domain.Option
	Tools      []domain.Option
}

// LoadDemoData parses the embedded demo lists
func LoadDemoData() (*DemoData, error) {
	var raw struct {
		Languages  []entry `toml:"languages"`
		Packages   []entry `toml:"packages"`
		Frameworks []entry `toml:"frameworks"`
		Tools      []entry `toml:"tools"`
	}
	if err := toml.Unmarshal(demoData, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse demo data: %w", err)
	}
	return &DemoData{
		Languages:  toCandidates(raw.Languages),
		Packages:   toCandidates(raw.Packages),
		Frameworks: toOptions(raw.Frameworks),
		Tools:      toOptions(raw.Tools),
	}, nil
}

func toCandidates(entries []entry) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.Candidate{Value: e.Value, Label: e.Label, Description: e.Description})
	}
	return out
}

func toOptions(entries []entry) []domain.Option {
	out := make([]domain.Option, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.Option{Value: e.Value, Label: e.Label, Disabled: e.Disabled})
	}
	return out
}

// PackageSource simulates a remote package search: fuzzy matches over the
// package list behind a fixed latency, with a result cache and request
// coalescing in front.
func PackageSource(packages []domain.Candidate, latency time.Duration, cacheSize int) source.Source {
	search := source.Func(func(ctx context.Context, text string) ([]domain.Candidate, error) {
		if strings.HasPrefix(text, "!") {
			return nil, errRegistryDown
		}
		return logic.Match(packages, text, logic.PolicyFuzzy, 0), nil
	})
	if cacheSize <= 0 {
		cacheSize = source.DefaultCacheSize
	}
	return source.Coalesced(source.Cached(source.Delayed(search, latency), cacheSize))
}
