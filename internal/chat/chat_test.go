package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"nba-chat-service/internal/domain"
	"nba-chat-service/internal/metrics"
	"nba-chat-service/internal/providers"
	"nba-chat-service/internal/store"
	"nba-chat-service/internal/teststubs"
	"nba-chat-service/internal/testutil"
)

func newDispatcher(t *testing.T, provider providers.StatProvider) *Dispatcher {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	return NewDispatcher(testutil.NewResolverStore(), provider, logger, metrics.NewRecorder())
}

func statProvider() *teststubs.StubProvider {
	return &teststubs.StubProvider{
		Stats: map[string]map[string]float64{
			"Kobe Bryant":  {"true shooting percentage": 55.0},
			"LeBron James": {"true shooting percentage": 58.8},
		},
	}
}

func TestDispatcherAnswersStatQuestion(t *testing.T) {
	d := newDispatcher(t, statProvider())

	resp, err := d.Handle(context.Background(), "What is Kobe Bryant's shooting percentage?")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if resp.Classification != domain.ClassPlayerStat {
		t.Fatalf("classification = %d, want %d", resp.Classification, domain.ClassPlayerStat)
	}
	want := "Kobe Bryant's true shooting percentage is 55.0."
	if resp.Reply != want {
		t.Fatalf("reply = %q, want %q", resp.Reply, want)
	}
}

func TestDispatcherAnswersComparison(t *testing.T) {
	d := newDispatcher(t, statProvider())

	resp, err := d.Handle(context.Background(), "Who is a better shooter Kobe Bryant or Lebron James?")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.HasPrefix(resp.Reply, "LeBron James has the better true shooting percentage") {
		t.Fatalf("unexpected comparison reply %q", resp.Reply)
	}
	if !strings.Contains(resp.Reply, "58.8") || !strings.Contains(resp.Reply, "55.0") {
		t.Fatalf("reply missing stat values: %q", resp.Reply)
	}
}

func TestDispatcherReportsTieOnExactEquality(t *testing.T) {
	provider := &teststubs.StubProvider{
		Stats: map[string]map[string]float64{
			"Kobe Bryant":  {"true shooting percentage": 55.0},
			"LeBron James": {"true shooting percentage": 55.0},
		},
	}
	d := newDispatcher(t, provider)

	resp, err := d.Handle(context.Background(), "Who is a better shooter Kobe Bryant or Lebron James?")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.HasPrefix(resp.Reply, "It's a tie") {
		t.Fatalf("expected tie reply, got %q", resp.Reply)
	}
}

func TestDispatcherDeclinesOutcomeQuestion(t *testing.T) {
	provider := statProvider()
	d := newDispatcher(t, provider)

	resp, err := d.Handle(context.Background(), "Will this team make it to the finals?")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if resp.Classification != domain.ClassOutcome {
		t.Fatalf("classification = %d, want %d", resp.Classification, domain.ClassOutcome)
	}
	if !strings.Contains(resp.Reply, "predict") {
		t.Fatalf("expected prediction decline, got %q", resp.Reply)
	}
	if provider.StatCalls.Load() != 0 {
		t.Fatal("outcome questions must not hit the provider")
	}
}

func TestDispatcherDeclinesOutOfDomain(t *testing.T) {
	provider := statProvider()
	d := newDispatcher(t, provider)

	resp, err := d.Handle(context.Background(), "I had pasta for lunch")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if resp.Classification != domain.ClassOutOfDomain {
		t.Fatalf("classification = %d, want %d", resp.Classification, domain.ClassOutOfDomain)
	}
	if !strings.Contains(resp.Reply, "basketball") {
		t.Fatalf("expected domain decline, got %q", resp.Reply)
	}
	if provider.StatCalls.Load() != 0 {
		t.Fatal("out-of-domain questions must not hit the provider")
	}
}

func TestDispatcherClarifiesMalformedQuery(t *testing.T) {
	d := newDispatcher(t, statProvider())

	// In-domain statement that matches no template.
	resp, err := d.Handle(context.Background(), "Michael Jordan is good!")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if resp.Classification != domain.ClassPlayerStat {
		t.Fatalf("classification = %d, want %d", resp.Classification, domain.ClassPlayerStat)
	}
	if !strings.Contains(resp.Reply, "Try asking") {
		t.Fatalf("expected format clarification, got %q", resp.Reply)
	}
}

func TestDispatcherClarifiesUnknownName(t *testing.T) {
	d := newDispatcher(t, statProvider())

	resp, err := d.Handle(context.Background(), "What is Zxqw Vbnm's shooting percentage?")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(resp.Reply, "Zxqw Vbnm's") {
		t.Fatalf("expected name clarification echoing the fragment, got %q", resp.Reply)
	}
}

func TestDispatcherClarifiesUnknownMetric(t *testing.T) {
	d := newDispatcher(t, statProvider())

	resp, err := d.Handle(context.Background(), "What is Kobe Bryant's flubber quotient?")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(resp.Reply, "flubber quotient") {
		t.Fatalf("expected metric clarification, got %q", resp.Reply)
	}
}

func TestDispatcherReportsMissingData(t *testing.T) {
	provider := &teststubs.StubProvider{
		StatErr: fmt.Errorf("upstream: %w", providers.ErrStatNotFound),
	}
	d := newDispatcher(t, provider)

	resp, err := d.Handle(context.Background(), "What is Kobe Bryant's shooting percentage?")
	if err != nil {
		t.Fatalf("missing data must not surface as an error: %v", err)
	}
	if !strings.Contains(resp.Reply, "don't have") {
		t.Fatalf("expected data-unavailable reply, got %q", resp.Reply)
	}
}

func TestDispatcherSurfacesInfrastructureFaults(t *testing.T) {
	provider := &teststubs.StubProvider{StatErr: errors.New("connection refused")}
	d := newDispatcher(t, provider)

	_, err := d.Handle(context.Background(), "What is Kobe Bryant's shooting percentage?")
	if err == nil {
		t.Fatal("expected infrastructure fault to propagate")
	}
	if !strings.Contains(err.Error(), "Kobe Bryant") {
		t.Fatalf("fault should be labeled with the lookup, got %v", err)
	}
}

func TestDispatcherErrorsBeforeFirstSnapshot(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	d := NewDispatcher(store.NewResolverStore(), statProvider(), logger, metrics.NewRecorder())

	_, err := d.Handle(context.Background(), "What is Kobe Bryant's shooting percentage?")
	if !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider-unavailable error, got %v", err)
	}
}

func TestDispatcherRecordsReplyOutcomes(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	d := NewDispatcher(testutil.NewResolverStore(), statProvider(), logger, rec)

	queries := []string{
		"What is Kobe Bryant's shooting percentage?",
		"Michael Jordan is good!",
		"I had pasta for lunch",
	}
	for _, q := range queries {
		if _, err := d.Handle(context.Background(), q); err != nil {
			t.Fatalf("Handle(%q): %v", q, err)
		}
	}

	if got := rec.ChatReplies("answered"); got != 1 {
		t.Fatalf("answered count = %d, want 1", got)
	}
	if got := rec.ChatReplies("clarification"); got != 1 {
		t.Fatalf("clarification count = %d, want 1", got)
	}
	if got := rec.ChatReplies("declined"); got != 1 {
		t.Fatalf("declined count = %d, want 1", got)
	}
	if got := rec.Classifications("player_stat"); got != 2 {
		t.Fatalf("player_stat classifications = %d, want 2", got)
	}
}
