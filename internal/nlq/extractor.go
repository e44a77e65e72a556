package nlq

import (
	"regexp"
	"strings"
)

// Single-entity templates of the form "What is <name>'s <metric>?".
// The name fragment keeps its possessive marker; resolution strips it.
var singleTemplates = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*what\s+(?:is|was|are)\s+(.+?'s)\s+(.+?)\s*[?.!]*\s*$`),
	regexp.MustCompile(`(?i)^\s*(?:tell|show)\s+me\s+(.+?'s)\s+(.+?)\s*[?.!]*\s*$`),
	regexp.MustCompile(`(?i)^\s*how\s+(?:good|high|low)\s+(?:is|was)\s+(.+?'s)\s+(.+?)\s*[?.!]*\s*$`),
}

// Comparison templates of the form "Who is a better <metric> <X> or <Y>?".
// The "better at" form must be tried first or its "at" leaks into the
// metric span of the plain form.
var pairTemplates = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*who\s+(?:is|was)\s+(?:a\s+|the\s+)?better\s+at\s+(.+?)[,:]?\s+(.+?)\s+or\s+(.+?)\s*[?.!]*\s*$`),
	regexp.MustCompile(`(?i)^\s*who\s+(?:is|was)\s+(?:a\s+|the\s+)?better\s+(.+?)[,:]?\s+(.+?)\s+or\s+(.+?)\s*[?.!]*\s*$`),
	regexp.MustCompile(`(?i)^\s*who\s+(?:is|was)\s+better\s+(.+?)[,:]?\s+(.+?)\s+vs\.?\s+(.+?)\s*[?.!]*\s*$`),
}

// ExtractSingle locates the possessive name span and the trailing metric
// span in a single-player question. Unmatched input yields empty fragments,
// which downstream resolution reports as not-found.
func ExtractSingle(query string) (nameFragment, metricFragment string) {
	for _, tpl := range singleTemplates {
		if m := tpl.FindStringSubmatch(query); m != nil {
			return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		}
	}
	return "", ""
}

// ExtractPair locates the comparative metric span and the two name spans
// joined by "or" in a comparison question. Unmatched input yields empty
// fragments.
func ExtractPair(query string) (name1, name2, metricFragment string) {
	for _, tpl := range pairTemplates {
		if m := tpl.FindStringSubmatch(query); m != nil {
			return strings.TrimSpace(m[2]), strings.TrimSpace(m[3]), strings.TrimSpace(m[1])
		}
	}
	return "", "", ""
}

// IsComparison reports whether the query matches any comparison template.
func IsComparison(query string) bool {
	for _, tpl := range pairTemplates {
		if tpl.MatchString(query) {
			return true
		}
	}
	return false
}
