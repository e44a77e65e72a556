package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nba-chat-service/internal/config"
	"nba-chat-service/internal/domain"
	"nba-chat-service/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:     "0",
		Provider: "fixture",
		Resolver: config.ResolverConfig{
			NameThreshold:   testutil.DefaultNameThreshold,
			MetricThreshold: testutil.DefaultMetricThreshold,
		},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	return New(testConfig(), logger)
}

func postMsg(t *testing.T, h http.Handler, msg string) domain.ChatResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/bot-msg", strings.NewReader("msg="+msg))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := testutil.ServeRequest(h, req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.ChatResponse
	testutil.DecodeJSON(t, rr, &resp)
	return resp
}

func TestServerAnswersEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	resp := postMsg(t, srv.Handler(), "What+is+Kobe+Bryant%27s+shooting+percentage%3F")
	if resp.Reply != "Kobe Bryant's true shooting percentage is 55.0." {
		t.Fatalf("unexpected reply %q", resp.Reply)
	}
	if resp.Classification != domain.ClassPlayerStat {
		t.Fatalf("unexpected classification %d", resp.Classification)
	}
}

func TestServerComparesEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	resp := postMsg(t, srv.Handler(), "Who+is+a+better+shooter+Kobe+Bryant+or+Lebron+James%3F")
	if !strings.HasPrefix(resp.Reply, "LeBron James has the better true shooting percentage") {
		t.Fatalf("unexpected reply %q", resp.Reply)
	}
}

func TestServerIsReadyAfterSeeding(t *testing.T) {
	srv := newTestServer(t)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestServerHealth(t *testing.T) {
	srv := newTestServer(t)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestServerMountsAdminWithToken(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	cfg := testConfig()
	cfg.AdminToken = "sekret"
	srv := New(cfg, logger)

	req := httptest.NewRequest(http.MethodPost, "/admin/roster/refresh", nil)
	req.Header.Set("Authorization", "Bearer sekret")
	rr := testutil.ServeRequest(srv.Handler(), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	// Without the token configured the route does not exist.
	bare := newTestServer(t)
	rr = testutil.Serve(bare.Handler(), http.MethodPost, "/admin/roster/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestProviderFactoryDefaultsToFixture(t *testing.T) {
	if got := normalizeProviderName(""); got != "fixture" {
		t.Fatalf("empty provider name = %q, want fixture", got)
	}
	if got := normalizeProviderName("  Balldontlie "); got != "balldontlie" {
		t.Fatalf("normalized name = %q, want balldontlie", got)
	}
}
