package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overlayFile is the YAML shape for operator-supplied vocabulary.
//
//	players:
//	  - canonical: LeBron James
//	    variants: [Lebron, King James]
//	metrics:
//	  - canonical: true shooting percentage
//	    phrases: [shooting, shooter]
type overlayFile struct {
	Players []struct {
		Canonical string   `yaml:"canonical"`
		Variants  []string `yaml:"variants"`
	} `yaml:"players"`
	Metrics []struct {
		Canonical string   `yaml:"canonical"`
		Phrases   []string `yaml:"phrases"`
	} `yaml:"metrics"`
}

// Load returns the built-in vocabulary, optionally merged with a YAML
// overlay and live roster names. Roster players with no curated entry are
// registered with their exact name as the only variant.
func Load(path string, rosterNames []string) (*AliasTable, *MetricLexicon, error) {
	aliases := defaultAliases()
	phrases := defaultMetricPhrases()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("lexicon overlay: %w", err)
		}
		var overlay overlayFile
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return nil, nil, fmt.Errorf("lexicon overlay: %w", err)
		}
		for _, p := range overlay.Players {
			if p.Canonical == "" {
				continue
			}
			aliases[p.Canonical] = append(aliases[p.Canonical], p.Variants...)
		}
		for _, m := range overlay.Metrics {
			if m.Canonical == "" {
				continue
			}
			phrases[m.Canonical] = append(phrases[m.Canonical], m.Phrases...)
		}
	}

	for _, name := range rosterNames {
		if name == "" {
			continue
		}
		if _, exists := aliases[name]; !exists {
			aliases[name] = nil
		}
	}

	return NewAliasTable(aliases), NewMetricLexicon(phrases), nil
}
