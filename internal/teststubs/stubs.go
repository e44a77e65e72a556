package teststubs

import (
	"context"
	"sync/atomic"

	"nba-chat-service/internal/domain"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Roster    []domain.Player
	RosterErr error
	// Stats maps player -> metric -> value.
	Stats      map[string]map[string]float64
	StatErr    error
	StatCalls  atomic.Int32
	FetchCalls atomic.Int32
}

// FetchRoster returns the configured roster and error while tracking calls.
func (s *StubProvider) FetchRoster(ctx context.Context) ([]domain.Player, error) {
	_ = ctx
	s.FetchCalls.Add(1)
	return s.Roster, s.RosterErr
}

// GetPlayerStat returns the configured value and error while tracking calls.
func (s *StubProvider) GetPlayerStat(ctx context.Context, player string, metric string) (float64, error) {
	_ = ctx
	s.StatCalls.Add(1)
	if s.StatErr != nil {
		return 0, s.StatErr
	}
	if byMetric, ok := s.Stats[player]; ok {
		if v, ok := byMetric[metric]; ok {
			return v, nil
		}
	}
	return 0, nil
}

// StubRefresher is a test double for handlers.RosterRefresher.
type StubRefresher struct {
	Err   error
	Calls atomic.Int32
}

// ForceRefresh tracks calls and returns the configured error.
func (s *StubRefresher) ForceRefresh(ctx context.Context) error {
	_ = ctx
	s.Calls.Add(1)
	return s.Err
}
