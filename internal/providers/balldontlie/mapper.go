package balldontlie

import (
	"strings"

	"nba-chat-service/internal/domain"
)

func mapPlayer(p playerResponse) domain.Player {
	return domain.Player{
		Name:     fullName(p),
		Team:     p.Team.FullName,
		Position: p.Position,
		Meta:     domain.PlayerMeta{UpstreamPlayerID: p.ID},
	}
}

func fullName(p playerResponse) string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// metricValue maps a canonical metric name onto the advanced-averages
// payload. Fractions are rescaled to percentages so replies read the way
// the stats are quoted ("58.8", not "0.588").
func metricValue(a advancedAverages, metric string) (float64, bool) {
	switch strings.ToLower(metric) {
	case "true shooting percentage":
		return a.TrueShootingPct * 100, true
	case "total rebound percentage":
		return a.ReboundPct * 100, true
	case "assist percentage":
		return a.AssistPct * 100, true
	case "usage percentage":
		return a.UsagePct * 100, true
	case "player efficiency rating":
		return a.PlayerEfficiency * 100, true
	case "defensive box plus/minus":
		return a.DefensiveBoxPM, true
	case "defensive plus/minus":
		return a.DefensivePlusMin, true
	default:
		return 0, false
	}
}
