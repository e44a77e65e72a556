package lexicon

// Curated nickname and misspelling variants for well-known players. The
// roster poller layers live player names on top of these.
func defaultAliases() map[string][]string {
	return map[string][]string{
		"LeBron James":        {"Lebron James", "Lebron", "LeBron", "King James", "Bron"},
		"Shaquille O'Neal":    {"Shaq", "Shaq O'Niel", "Shakiel O'Neal", "Shaquille Oneal"},
		"Klay Thompson":       {"Klay", "Clay Thompson", "Klay Thomson", "Clay Thomson"},
		"Kobe Bryant":         {"Kobe", "Black Mamba"},
		"Wilt Chamberlain":    {"Wilt", "Wilt the Stilt"},
		"Dennis Rodman":       {"Rodman", "The Worm"},
		"Michael Jordan":      {"MJ", "Jordan", "Mike Jordan", "His Airness"},
		"Stephen Curry":       {"Steph", "Steph Curry", "Chef Curry"},
		"Kevin Durant":        {"KD", "Durant"},
		"Giannis Antetokounmpo": {"Giannis", "Greek Freak"},
		"Magic Johnson":       {"Magic"},
		"Larry Bird":          {"Bird", "Larry Legend"},
		"Tim Duncan":          {"Duncan", "The Big Fundamental"},
		"Hakeem Olajuwon":     {"Hakeem", "The Dream", "Akeem Olajuwon"},
		"Kareem Abdul-Jabbar": {"Kareem", "Kareem Abdul Jabbar"},
	}
}

// Colloquial phrases users reach for when they mean an advanced statistic.
func defaultMetricPhrases() map[string][]string {
	return map[string][]string{
		"true shooting percentage": {
			"shooting", "shooter", "shooting percentage", "true shooting",
			"ts percentage", "scoring efficiency",
		},
		"defensive plus/minus": {
			"defending", "defender", "defense", "defensive plus minus",
		},
		"player efficiency rating": {
			"player", "efficiency", "per", "efficiency rating",
		},
		"total rebound percentage": {
			"rebounding", "rebounder", "rebounds", "rebound percentage",
		},
		"defensive box plus/minus": {
			"defensive box plus minus", "defensive box",
		},
		"assist percentage": {
			"passing", "passer", "playmaking", "assists",
		},
		"usage percentage": {
			"usage", "usage rate",
		},
	}
}

// Defaults returns the built-in alias table and metric lexicon.
func Defaults() (*AliasTable, *MetricLexicon) {
	return NewAliasTable(defaultAliases()), NewMetricLexicon(defaultMetricPhrases())
}
