package logic

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"

	"fieldkit/internal/domain"
)

// Index answers queries over a fixed candidate list. Prefix queries are served
// from a trie of folded labels and values; other policies fall back to Match.
type Index struct {
	candidates []domain.Candidate
	trie       *patricia.Trie
}

// NewIndex builds an index over a private copy of candidates
func NewIndex(candidates []domain.Candidate) *Index {
	ix := &Index{
		candidates: domain.CloneCandidates(candidates),
		trie:       patricia.NewTrie(),
	}
	for i, c := range ix.candidates {
		ix.add(Fold(c.DisplayLabel()), i)
		if c.Value != c.DisplayLabel() {
			ix.add(Fold(c.Value), i)
		}
	}
	return ix
}

func (ix *Index) add(key string, i int) {
	prefix := patricia.Prefix(key)
	if existing := ix.trie.Get(prefix); existing != nil {
		ix.trie.Set(prefix, append(existing.([]int), i))
		return
	}
	ix.trie.Insert(prefix, []int{i})
}

// Len returns the number of indexed candidates
func (ix *Index) Len() int {
	return len(ix.candidates)
}

// Candidates returns a copy of the indexed candidates in source order
func (ix *Index) Candidates() []domain.Candidate {
	return domain.CloneCandidates(ix.candidates)
}

// Match behaves exactly like the package-level Match over the indexed list
func (ix *Index) Match(text string, policy Policy, limit int) []domain.Candidate {
	if text == "" || policy != PolicyStartsWith {
		return Match(ix.candidates, text, policy, limit)
	}

	seen := make(map[int]struct{})
	var hits []int
	_ = ix.trie.VisitSubtree(patricia.Prefix(Fold(text)), func(_ patricia.Prefix, item patricia.Item) error {
		for _, i := range item.([]int) {
			if _, ok := seen[i]; ok {
				continue
			}
			seen[i] = struct{}{}
			hits = append(hits, i)
		}
		return nil
	})
	sort.Ints(hits)

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]domain.Candidate, len(hits))
	for n, i := range hits {
		out[n] = ix.candidates[i]
	}
	return out
}
