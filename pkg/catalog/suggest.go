package catalog

import (
	"sort"
	"strings"

	"github.com/arthur-debert/awesome-copilot/pkg/errors"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ClosestMatch picks the candidate nearest to target, or "" when nothing is
// close. Candidates containing the target's characters in order win;
// otherwise the smallest edit distance within a third of the target's
// length is used.
func ClosestMatch(target string, candidates []string) string {
	target = strings.TrimSpace(target)
	if target == "" || len(candidates) == 0 {
		return ""
	}

	if ranks := fuzzy.RankFindNormalizedFold(target, candidates); len(ranks) > 0 {
		sort.Stable(ranks)
		return ranks[0].Target
	}

	best, bestDistance := "", -1
	maxDistance := len(target) / 3
	if maxDistance < 2 {
		maxDistance = 2
	}
	for _, candidate := range candidates {
		d := fuzzy.LevenshteinDistance(strings.ToLower(target), strings.ToLower(candidate))
		if d <= maxDistance && (bestDistance < 0 || d < bestDistance) {
			best, bestDistance = candidate, d
		}
	}
	return best
}

// UnknownCollection builds the NOT_FOUND error for a collection name.
func (c *Catalog) UnknownCollection(name string) error {
	return notFound("collection", name, ClosestMatch(name, c.CollectionNames()))
}

// UnknownItem builds the NOT_FOUND error for an item.
func (c *Catalog) UnknownItem(ref types.ItemRef) error {
	return notFound(ref.Section.Info().Singular, ref.Name, ClosestMatch(ref.Name, c.items[ref.Section]))
}

func notFound(kind, name, suggestion string) error {
	if suggestion == "" {
		return errors.Newf(errors.ErrNotFound, "unknown %s '%s'", kind, name)
	}
	return errors.Newf(errors.ErrNotFound, "unknown %s '%s', did you mean '%s'?", kind, name, suggestion).
		WithDetail(errors.DetailSuggestion, suggestion)
}
