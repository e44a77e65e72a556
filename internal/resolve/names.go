package resolve

import (
	"nba-chat-service/internal/lexicon"
)

// NameResolver funnels noisy name fragments to canonical player names.
type NameResolver struct {
	table *lexicon.AliasTable
	m     *matcher
}

// NewNameResolver builds a resolver over the alias table. threshold is the
// minimum Jaro-Winkler score a fuzzy match must clear.
func NewNameResolver(table *lexicon.AliasTable, threshold float64) *NameResolver {
	m := newMatcher(threshold)
	table.Walk(m.addVariant)
	return &NameResolver{table: table, m: m}
}

// Resolve maps a fragment such as "Kobe Bryant's", "kobe", or "Shaq O'Niel"
// to a canonical player name. It reports false when nothing clears the
// threshold or when two distinct players tie above it.
func (r *NameResolver) Resolve(fragment string) (string, bool) {
	if canonical, ok := r.table.Lookup(fragment); ok {
		return canonical, true
	}
	return r.m.match(fragment)
}
