// Package nlq performs the query-understanding half of the chat pipeline:
// relevance classification and template-based span extraction. It is
// deliberately pattern-driven; anything outside the recognized templates is
// reported as unmatched rather than guessed at.
package nlq

import (
	"regexp"
	"strings"

	"nba-chat-service/internal/domain"
	"nba-chat-service/internal/lexicon"
)

// outcomePattern captures forward-looking team/outcome vocabulary. The
// outcome check runs before the player/stat check; a query matching both
// classifies as an outcome question. Keep that ordering explicit when
// adding vocabulary.
var outcomePattern = regexp.MustCompile(`(?i)\b(will|gonna|going to|predict|predictions?|finals|playoffs?|championship|title|bracket|who wins|win the|next season)\b`)

// stop tokens never count as player-name evidence on their own.
var stopTokens = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "who": {}, "what": {}, "his": {}, "her": {},
}

// Classifier labels raw queries as outcome questions, player/stat
// questions, or out-of-domain text. It is read-only after construction.
type Classifier struct {
	nameTokens    map[string]struct{}
	metricPhrases []string
}

// NewClassifier builds a classifier from the vocabulary tables.
func NewClassifier(aliases *lexicon.AliasTable, lex *lexicon.MetricLexicon) *Classifier {
	c := &Classifier{nameTokens: make(map[string]struct{})}

	aliases.Walk(func(variant, canonical string) {
		for _, tok := range strings.Fields(lexicon.Normalize(variant)) {
			if len(tok) < 3 {
				continue
			}
			if _, stop := stopTokens[tok]; stop {
				continue
			}
			c.nameTokens[tok] = struct{}{}
		}
	})

	lex.Walk(func(phrase, canonical string) {
		key := lexicon.Normalize(phrase)
		if len(key) >= 4 {
			c.metricPhrases = append(c.metricPhrases, key)
		}
	})

	return c
}

// Classify is total: it returns exactly one of ClassOutcome,
// ClassPlayerStat, or ClassOutOfDomain for any input.
func (c *Classifier) Classify(text string) domain.Classification {
	if outcomePattern.MatchString(text) {
		return domain.ClassOutcome
	}
	if c.mentionsPlayer(text) || c.mentionsMetric(text) {
		return domain.ClassPlayerStat
	}
	return domain.ClassOutOfDomain
}

func (c *Classifier) mentionsPlayer(text string) bool {
	for _, tok := range strings.Fields(lexicon.Normalize(text)) {
		if _, ok := c.nameTokens[tok]; ok {
			return true
		}
	}
	return false
}

func (c *Classifier) mentionsMetric(text string) bool {
	padded := " " + lexicon.Normalize(text) + " "
	for _, phrase := range c.metricPhrases {
		if strings.Contains(padded, " "+phrase+" ") {
			return true
		}
	}
	return false
}
