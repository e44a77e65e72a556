package resolve

import (
	"strings"

	"nba-chat-service/internal/domain"
	"nba-chat-service/internal/lexicon"
)

// MetricResolver maps colloquial stat phrases to canonical metric names.
type MetricResolver struct {
	lex *lexicon.MetricLexicon
	m   *matcher
}

// NewMetricResolver builds a resolver over the metric lexicon with its own
// similarity threshold.
func NewMetricResolver(lex *lexicon.MetricLexicon, threshold float64) *MetricResolver {
	m := newMatcher(threshold)
	lex.Walk(m.addVariant)
	return &MetricResolver{lex: lex, m: m}
}

// Resolve maps a phrase such as "shooter" or "shooting percentage" to a
// canonical metric. A nil result is the expected outcome for an unmapped
// phrase, not a fault.
func (r *MetricResolver) Resolve(phrase string) *domain.Metric {
	if canonical, ok := r.lex.Lookup(phrase); ok {
		return metricPtr(canonical)
	}
	if canonical, ok := r.substringMatch(phrase); ok {
		return metricPtr(canonical)
	}
	if canonical, ok := r.m.match(phrase); ok {
		return metricPtr(canonical)
	}
	return nil
}

// substringMatch accepts the longest registered phrase contained in the
// input (or containing it), so "best shooting" still lands on the shooting
// metric.
func (r *MetricResolver) substringMatch(phrase string) (string, bool) {
	needle := lexicon.Normalize(phrase)
	if needle == "" {
		return "", false
	}

	var best string
	var bestLen int
	for _, canonical := range r.lex.Canonical() {
		for _, p := range r.lex.Phrases(canonical) {
			key := lexicon.Normalize(p)
			if len(key) < 4 {
				// Too short to be a trustworthy substring signal ("per").
				continue
			}
			if strings.Contains(needle, key) || strings.Contains(key, needle) {
				if len(key) > bestLen {
					best, bestLen = canonical, len(key)
				}
			}
		}
	}
	return best, best != ""
}

func metricPtr(name string) *domain.Metric {
	m := domain.Metric(name)
	return &m
}
