package resolve

import (
	"nba-chat-service/internal/lexicon"
)

// Resolvers bundles the name and metric resolvers built from one vocabulary
// snapshot. A bundle is immutable; the roster poller swaps whole bundles.
type Resolvers struct {
	Names   *NameResolver
	Metrics *MetricResolver
	Aliases *lexicon.AliasTable
	Lexicon *lexicon.MetricLexicon
}

// Thresholds carries the similarity acceptance floors.
type Thresholds struct {
	Name   float64
	Metric float64
}

// Build constructs a resolver bundle from vocabulary tables.
func Build(aliases *lexicon.AliasTable, lex *lexicon.MetricLexicon, t Thresholds) *Resolvers {
	return &Resolvers{
		Names:   NewNameResolver(aliases, t.Name),
		Metrics: NewMetricResolver(lex, t.Metric),
		Aliases: aliases,
		Lexicon: lex,
	}
}
