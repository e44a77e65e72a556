package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nba-chat-service/internal/chat"
	"nba-chat-service/internal/domain"
	"nba-chat-service/internal/metrics"
	"nba-chat-service/internal/poller"
	"nba-chat-service/internal/teststubs"
	"nba-chat-service/internal/testutil"
)

func newTestHandler(t *testing.T, provider *teststubs.StubProvider, statusFn func() poller.Status) *Handler {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	dispatcher := chat.NewDispatcher(testutil.NewResolverStore(), provider, logger, metrics.NewRecorder())
	return NewHandler(dispatcher, logger, statusFn)
}

func answeringProvider() *teststubs.StubProvider {
	return &teststubs.StubProvider{
		Stats: map[string]map[string]float64{
			"Kobe Bryant": {"true shooting percentage": 55.0},
		},
	}
}

func postForm(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestBotMessageAnswersFormBody(t *testing.T) {
	h := newTestHandler(t, answeringProvider(), nil)

	req := postForm("/bot-msg", "msg=What+is+Kobe+Bryant%27s+shooting+percentage%3F")
	rr := httptest.NewRecorder()
	h.BotMessage(rr, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp domain.ChatResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Reply != "Kobe Bryant's true shooting percentage is 55.0." {
		t.Fatalf("unexpected reply %q", resp.Reply)
	}
	if resp.Classification != domain.ClassPlayerStat {
		t.Fatalf("unexpected classification %d", resp.Classification)
	}
}

func TestBotMessageAnswersJSONBody(t *testing.T) {
	h := newTestHandler(t, answeringProvider(), nil)

	req := httptest.NewRequest(http.MethodPost, "/bot-msg", strings.NewReader(`{"msg": "What is Kobe Bryant's shooting percentage?"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.BotMessage(rr, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp domain.ChatResponse
	testutil.DecodeJSON(t, rr, &resp)
	if !strings.Contains(resp.Reply, "55.0") {
		t.Fatalf("unexpected reply %q", resp.Reply)
	}
}

func TestBotMessageRejectsGet(t *testing.T) {
	h := newTestHandler(t, answeringProvider(), nil)

	req := httptest.NewRequest(http.MethodGet, "/bot-msg", nil)
	rr := httptest.NewRecorder()
	h.BotMessage(rr, req)

	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestBotMessageRequiresMsg(t *testing.T) {
	h := newTestHandler(t, answeringProvider(), nil)

	for _, body := range []string{"", "msg=", "other=hi", `{"msg": ""}`} {
		req := postForm("/bot-msg", body)
		if strings.HasPrefix(body, "{") {
			req = httptest.NewRequest(http.MethodPost, "/bot-msg", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		rr := httptest.NewRecorder()
		h.BotMessage(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rr.Code)
		}
	}
}

func TestBotMessageLabelsInfrastructureFaults(t *testing.T) {
	provider := &teststubs.StubProvider{StatErr: errors.New("connection refused")}
	h := newTestHandler(t, provider, nil)

	req := postForm("/bot-msg", "msg=What+is+Kobe+Bryant%27s+shooting+percentage%3F")
	rr := httptest.NewRecorder()
	h.BotMessage(rr, req)

	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if !strings.Contains(resp["error"], "provider") {
		t.Fatalf("expected labeled infrastructure error, got %q", resp["error"])
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, answeringProvider(), nil)

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodPost, "/health", nil))
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestReadyFollowsPollerStatus(t *testing.T) {
	ready := poller.Status{Seeded: true}
	h := newTestHandler(t, answeringProvider(), func() poller.Status { return ready })

	rr := httptest.NewRecorder()
	h.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)

	ready = poller.Status{Seeded: false}
	rr = httptest.NewRecorder()
	h.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}
