// Package lexicon holds the static vocabulary the chat pipeline resolves
// against: accepted player name variants and colloquial metric phrases.
// Tables are built once at startup (or on roster refresh) and are read-only
// afterwards; resolvers share them by reference.
package lexicon

import (
	"sort"
	"strings"
)

// AliasTable maps accepted spelling/nickname variants to canonical player
// names. Every canonical name is registered as a variant of itself.
type AliasTable struct {
	variants    map[string]string   // normalized variant -> canonical
	byCanonical map[string][]string // canonical -> original variant forms
	canonical   []string            // sorted canonical names
}

// NewAliasTable builds a table from canonical -> variants pairs.
// The canonical spelling itself is always registered.
func NewAliasTable(entries map[string][]string) *AliasTable {
	t := &AliasTable{
		variants:    make(map[string]string),
		byCanonical: make(map[string][]string),
	}
	for canonical, vars := range entries {
		t.add(canonical, canonical)
		for _, v := range vars {
			t.add(canonical, v)
		}
	}
	t.canonical = make([]string, 0, len(t.byCanonical))
	for name := range t.byCanonical {
		t.canonical = append(t.canonical, name)
	}
	sort.Strings(t.canonical)
	return t
}

func (t *AliasTable) add(canonical, variant string) {
	key := Normalize(variant)
	if key == "" {
		return
	}
	if _, seen := t.variants[key]; !seen {
		t.variants[key] = canonical
		t.byCanonical[canonical] = append(t.byCanonical[canonical], variant)
	}
}

// Lookup returns the canonical name for an exact (normalized) variant match.
func (t *AliasTable) Lookup(variant string) (string, bool) {
	canonical, ok := t.variants[Normalize(variant)]
	return canonical, ok
}

// Canonical returns the sorted canonical player names.
func (t *AliasTable) Canonical() []string {
	return t.canonical
}

// Variants returns the registered variant spellings for a canonical name.
func (t *AliasTable) Variants(canonical string) []string {
	return t.byCanonical[canonical]
}

// Walk visits every (variant, canonical) pair in the table.
func (t *AliasTable) Walk(fn func(variant, canonical string)) {
	for _, canonical := range t.canonical {
		for _, v := range t.byCanonical[canonical] {
			fn(v, canonical)
		}
	}
}

// Len returns the number of canonical players.
func (t *AliasTable) Len() int { return len(t.canonical) }

// MetricLexicon maps colloquial phrases to canonical statistic names.
// A phrase maps to at most one canonical metric; the canonical name itself
// is always a registered phrase.
type MetricLexicon struct {
	phrases   map[string]string   // normalized phrase -> canonical
	byMetric  map[string][]string // canonical -> original phrases
	canonical []string
}

// NewMetricLexicon builds a lexicon from canonical -> phrases pairs.
func NewMetricLexicon(entries map[string][]string) *MetricLexicon {
	l := &MetricLexicon{
		phrases:  make(map[string]string),
		byMetric: make(map[string][]string),
	}
	for canonical, phrases := range entries {
		l.add(canonical, canonical)
		for _, p := range phrases {
			l.add(canonical, p)
		}
	}
	l.canonical = make([]string, 0, len(l.byMetric))
	for name := range l.byMetric {
		l.canonical = append(l.canonical, name)
	}
	sort.Strings(l.canonical)
	return l
}

func (l *MetricLexicon) add(canonical, phrase string) {
	key := Normalize(phrase)
	if key == "" {
		return
	}
	if _, seen := l.phrases[key]; !seen {
		l.phrases[key] = canonical
		l.byMetric[canonical] = append(l.byMetric[canonical], phrase)
	}
}

// Lookup returns the canonical metric for an exact (normalized) phrase match.
func (l *MetricLexicon) Lookup(phrase string) (string, bool) {
	canonical, ok := l.phrases[Normalize(phrase)]
	return canonical, ok
}

// Canonical returns the sorted canonical metric names.
func (l *MetricLexicon) Canonical() []string { return l.canonical }

// Phrases returns the registered phrases for a canonical metric.
func (l *MetricLexicon) Phrases(canonical string) []string {
	return l.byMetric[canonical]
}

// Walk visits every (phrase, canonical) pair in the lexicon.
func (l *MetricLexicon) Walk(fn func(phrase, canonical string)) {
	for _, canonical := range l.canonical {
		for _, p := range l.byMetric[canonical] {
			fn(p, canonical)
		}
	}
}

// Normalize lowercases, trims possessive suffixes, and strips punctuation
// other than intra-word apostrophes ("Shaq O'Niel" keeps its apostrophe,
// "Kobe Bryant's" loses the possessive).
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	fields := strings.Fields(s)
	for i, f := range fields {
		f = strings.Trim(f, `.,!?;:"()[]`)
		f = strings.TrimSuffix(f, "'s")
		f = strings.TrimSuffix(f, "'")
		fields[i] = f
	}
	return strings.Join(fields, " ")
}
