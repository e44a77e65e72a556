// Package resolve maps noisy user text fragments to canonical players and
// statistics. Matching is two-stage: exact table lookup first, then Double
// Metaphone candidate filtering ranked by Jaro-Winkler similarity. The
// acceptance thresholds are configuration, not algorithm: which misspellings
// resolve depends entirely on them.
package resolve

import (
	"strings"

	"github.com/antzucaro/matchr"

	"nba-chat-service/internal/lexicon"
)

// fuzzyBoost is added to the threshold when a candidate has no phonetic
// support, so pure string similarity has to clear a higher bar.
const fuzzyBoost = 0.07

// scoreEpsilon bounds what counts as a tie between two canonical entities.
const scoreEpsilon = 1e-9

type entry struct {
	canonical string
	lower     string
	tokens    []string
	codes     map[string]struct{}
}

// matcher ranks a fragment against precomputed variant entries. It is
// read-only after construction and safe for concurrent use.
type matcher struct {
	entries   []entry
	threshold float64
}

func newMatcher(threshold float64) *matcher {
	return &matcher{threshold: threshold}
}

func (m *matcher) addVariant(variant, canonical string) {
	lower := lexicon.Normalize(variant)
	if lower == "" {
		return
	}
	tokens := strings.Fields(lower)
	m.entries = append(m.entries, entry{
		canonical: canonical,
		lower:     lower,
		tokens:    tokens,
		codes:     codesForTokens(tokens),
	})
}

// match returns the single canonical entity whose best-scoring variant
// clears the threshold. Two distinct canonicals tying above threshold is
// ambiguous and reports no match.
func (m *matcher) match(fragment string) (string, bool) {
	lower := lexicon.Normalize(fragment)
	if lower == "" || len(m.entries) == 0 {
		return "", false
	}
	tokens := strings.Fields(lower)
	codes := codesForTokens(tokens)

	var (
		best         string
		bestScore    float64
		bestPhonetic bool
		ambiguous    bool
	)

	for i := range m.entries {
		e := &m.entries[i]
		phonetic := codesOverlap(codes, e.codes)
		floor := m.threshold
		if !phonetic {
			floor = m.threshold + fuzzyBoost
		}

		score := bestSimilarity(tokens, e.tokens, lower, e.lower)
		if score < floor {
			continue
		}

		switch {
		case phonetic && !bestPhonetic:
			// Phonetically supported candidates outrank plain string matches.
			best, bestScore, bestPhonetic, ambiguous = e.canonical, score, true, false
		case phonetic == bestPhonetic && score > bestScore+scoreEpsilon:
			best, bestScore, ambiguous = e.canonical, score, false
		case phonetic == bestPhonetic && score > bestScore-scoreEpsilon && e.canonical != best:
			ambiguous = true
		}
	}

	if best == "" || ambiguous {
		return "", false
	}
	return best, true
}

// codesForTokens unions the Double Metaphone codes of every token.
func codesForTokens(tokens []string) map[string]struct{} {
	codes := make(map[string]struct{}, len(tokens)*2)
	for _, t := range tokens {
		primary, secondary := matchr.DoubleMetaphone(t)
		if primary != "" {
			codes[primary] = struct{}{}
		}
		if secondary != "" {
			codes[secondary] = struct{}{}
		}
	}
	return codes
}

func codesOverlap(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}

// bestSimilarity takes the highest Jaro-Winkler score across full strings,
// space-stripped strings, and the best pairwise token comparison, so that a
// lone surname ("Rodman") can still line up with a full variant.
func bestSimilarity(aTokens, bTokens []string, aFull, bFull string) float64 {
	score := matchr.JaroWinkler(aFull, bFull, false)

	if len(aTokens) > 1 || len(bTokens) > 1 {
		if s := matchr.JaroWinkler(strings.Join(aTokens, ""), strings.Join(bTokens, ""), false); s > score {
			score = s
		}
	}

	for _, at := range aTokens {
		for _, bt := range bTokens {
			if s := matchr.JaroWinkler(at, bt, false); s > score {
				score = s
			}
		}
	}
	return score
}
