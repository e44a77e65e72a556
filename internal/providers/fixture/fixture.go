package fixture

import (
	"context"
	"fmt"

	"nba-chat-service/internal/domain"
	"nba-chat-service/internal/providers"
)

// Provider returns a static set of players and career advanced stats,
// useful for local runs and bootstrapping without an API key.
type Provider struct {
	stats map[string]map[string]float64
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{stats: fixtureStats()}
}

// FetchRoster returns the deterministic fixture roster.
func (p *Provider) FetchRoster(ctx context.Context) ([]domain.Player, error) {
	_ = ctx
	return []domain.Player{
		{Name: "Kobe Bryant", Team: "Los Angeles Lakers", Position: "G", Meta: domain.PlayerMeta{UpstreamPlayerID: 1101}},
		{Name: "LeBron James", Team: "Los Angeles Lakers", Position: "F", Meta: domain.PlayerMeta{UpstreamPlayerID: 1102}},
		{Name: "Klay Thompson", Team: "Golden State Warriors", Position: "G", Meta: domain.PlayerMeta{UpstreamPlayerID: 1103}},
		{Name: "Shaquille O'Neal", Team: "Los Angeles Lakers", Position: "C", Meta: domain.PlayerMeta{UpstreamPlayerID: 1104}},
		{Name: "Wilt Chamberlain", Team: "Philadelphia 76ers", Position: "C", Meta: domain.PlayerMeta{UpstreamPlayerID: 1105}},
		{Name: "Dennis Rodman", Team: "Chicago Bulls", Position: "F", Meta: domain.PlayerMeta{UpstreamPlayerID: 1106}},
		{Name: "Michael Jordan", Team: "Chicago Bulls", Position: "G", Meta: domain.PlayerMeta{UpstreamPlayerID: 1107}},
		{Name: "Stephen Curry", Team: "Golden State Warriors", Position: "G", Meta: domain.PlayerMeta{UpstreamPlayerID: 1108}},
	}, nil
}

// GetPlayerStat returns the fixture value for a (player, metric) pair.
func (p *Provider) GetPlayerStat(ctx context.Context, player string, metric string) (float64, error) {
	_ = ctx
	byMetric, ok := p.stats[player]
	if !ok {
		return 0, fmt.Errorf("fixture: player %q: %w", player, providers.ErrStatNotFound)
	}
	value, ok := byMetric[metric]
	if !ok {
		return 0, fmt.Errorf("fixture: metric %q: %w", metric, providers.ErrStatNotFound)
	}
	return value, nil
}

// Career advanced stats, basketball-reference style.
func fixtureStats() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"Kobe Bryant": {
			"true shooting percentage": 55.0,
			"total rebound percentage": 8.1,
			"assist percentage":        24.0,
			"usage percentage":         31.9,
			"player efficiency rating": 22.9,
			"defensive box plus/minus": 0.2,
			"defensive plus/minus":     0.8,
		},
		"LeBron James": {
			"true shooting percentage": 58.8,
			"total rebound percentage": 11.4,
			"assist percentage":        36.4,
			"usage percentage":         31.5,
			"player efficiency rating": 27.1,
			"defensive box plus/minus": 1.9,
			"defensive plus/minus":     1.6,
		},
		"Klay Thompson": {
			"true shooting percentage": 58.0,
			"total rebound percentage": 5.8,
			"assist percentage":        10.5,
			"usage percentage":         26.0,
			"player efficiency rating": 16.8,
			"defensive box plus/minus": -0.2,
			"defensive plus/minus":     0.3,
		},
		"Shaquille O'Neal": {
			"true shooting percentage": 58.6,
			"total rebound percentage": 16.7,
			"assist percentage":        12.6,
			"usage percentage":         31.6,
			"player efficiency rating": 26.4,
			"defensive box plus/minus": 1.6,
			"defensive plus/minus":     2.1,
		},
		"Wilt Chamberlain": {
			"true shooting percentage": 54.7,
			"total rebound percentage": 19.6,
			"assist percentage":        18.0,
			"usage percentage":         27.8,
			"player efficiency rating": 26.1,
			"defensive box plus/minus": 2.3,
			"defensive plus/minus":     2.8,
		},
		"Dennis Rodman": {
			"true shooting percentage": 53.1,
			"total rebound percentage": 23.4,
			"assist percentage":        8.7,
			"usage percentage":         12.1,
			"player efficiency rating": 14.6,
			"defensive box plus/minus": 2.0,
			"defensive plus/minus":     2.5,
		},
		"Michael Jordan": {
			"true shooting percentage": 56.9,
			"total rebound percentage": 9.4,
			"assist percentage":        24.9,
			"usage percentage":         33.3,
			"player efficiency rating": 27.9,
			"defensive box plus/minus": 1.4,
			"defensive plus/minus":     1.8,
		},
		"Stephen Curry": {
			"true shooting percentage": 62.6,
			"total rebound percentage": 7.3,
			"assist percentage":        30.6,
			"usage percentage":         28.5,
			"player efficiency rating": 23.8,
			"defensive box plus/minus": 0.1,
			"defensive plus/minus":     0.4,
		},
	}
}
