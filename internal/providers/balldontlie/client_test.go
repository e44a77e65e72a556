package balldontlie

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"nba-chat-service/internal/providers"
)

func TestFetchRosterPaginates(t *testing.T) {
	var pagesServed []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/players" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pagesServed = append(pagesServed, page)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"data": [{"id": %d, "first_name": "Player", "last_name": "Number%d", "position": "G", "team": {"full_name": "Team"}}],
			"meta": {"total_pages": 2}
		}`, page, page)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	roster, err := client.FetchRoster(context.Background())
	if err != nil {
		t.Fatalf("FetchRoster: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 players across pages, got %d", len(roster))
	}
	if len(pagesServed) != 2 || pagesServed[0] != 1 || pagesServed[1] != 2 {
		t.Fatalf("unexpected pages served %v", pagesServed)
	}
	if roster[0].Name != "Player Number1" {
		t.Fatalf("unexpected mapped name %q", roster[0].Name)
	}
	if roster[0].Meta.UpstreamPlayerID != 1 {
		t.Fatalf("unexpected upstream id %d", roster[0].Meta.UpstreamPlayerID)
	}
}

func TestFetchRosterStopsAtMaxPages(t *testing.T) {
	var served int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data": [`)
		for i := 0; i < defaultPerPage; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"id": %d, "first_name": "A", "last_name": "B%d"}`, i, i)
		}
		fmt.Fprint(w, `], "meta": {}}`)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, MaxPages: 3})
	if _, err := client.FetchRoster(context.Background()); err != nil {
		t.Fatalf("FetchRoster: %v", err)
	}
	if served != 3 {
		t.Fatalf("expected fetch to stop at 3 pages, served %d", served)
	}
}

func TestGetPlayerStat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/players":
			if got := r.URL.Query().Get("search"); got != "Bryant" {
				t.Errorf("expected last-name search, got %q", got)
			}
			fmt.Fprint(w, `{"data": [
				{"id": 77, "first_name": "Kobe", "last_name": "Bryant"},
				{"id": 78, "first_name": "Other", "last_name": "Bryant"}
			], "meta": {}}`)
		case "/season_averages/advanced":
			if got := r.URL.Query().Get("player_ids[]"); got != "77" {
				t.Errorf("expected player id 77, got %q", got)
			}
			fmt.Fprint(w, `{"data": [{"player_id": 77, "ts_pct": 0.5}], "meta": {}}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Season: 2023})
	value, err := client.GetPlayerStat(context.Background(), "Kobe Bryant", "true shooting percentage")
	if err != nil {
		t.Fatalf("GetPlayerStat: %v", err)
	}
	if value != 50.0 {
		t.Fatalf("expected fraction rescaled to 50.0, got %v", value)
	}
}

func TestGetPlayerStatUnknownPlayer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data": [], "meta": {}}`)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.GetPlayerStat(context.Background(), "Nobody Here", "true shooting percentage")
	if !errors.Is(err, providers.ErrStatNotFound) {
		t.Fatalf("expected ErrStatNotFound, got %v", err)
	}
}

func TestGetPlayerStatUnsupportedMetric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/players":
			fmt.Fprint(w, `{"data": [{"id": 5, "first_name": "Kobe", "last_name": "Bryant"}], "meta": {}}`)
		default:
			fmt.Fprint(w, `{"data": [{"player_id": 5, "ts_pct": 0.55}], "meta": {}}`)
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.GetPlayerStat(context.Background(), "Kobe Bryant", "vertical leap")
	if !errors.Is(err, providers.ErrStatNotFound) {
		t.Fatalf("expected ErrStatNotFound for unsupported metric, got %v", err)
	}
}

func TestDoJSONRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchRoster(context.Background())

	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 30*time.Second {
		t.Fatalf("expected Retry-After 30s, got %v", rl.RetryAfter)
	}
}

func TestDoJSONUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, err := client.FetchRoster(context.Background()); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestBearerAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data": [], "meta": {}}`)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	if _, err := client.FetchRoster(context.Background()); err != nil {
		t.Fatalf("FetchRoster: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
}

func TestMetricValueMapping(t *testing.T) {
	a := advancedAverages{
		TrueShootingPct:  0.588,
		ReboundPct:       0.114,
		DefensiveBoxPM:   1.9,
		DefensivePlusMin: 1.6,
	}

	if v, ok := metricValue(a, "true shooting percentage"); !ok || math.Abs(v-58.8) > 1e-9 {
		t.Fatalf("ts mapping = %v ok=%v", v, ok)
	}
	if v, ok := metricValue(a, "defensive box plus/minus"); !ok || v != 1.9 {
		t.Fatalf("dbpm mapping = %v ok=%v", v, ok)
	}
	if _, ok := metricValue(a, "vertical leap"); ok {
		t.Fatal("unsupported metric must not map")
	}
}
