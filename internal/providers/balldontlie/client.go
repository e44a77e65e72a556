package balldontlie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nba-chat-service/internal/domain"
	"nba-chat-service/internal/providers"
	"nba-chat-service/internal/seasonutil"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	MaxPages   int
	// Season is the season start year to query; 0 means the current season.
	Season int
}

// Client fetches players and season-average advanced stats from the
// balldontlie API and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
	maxPages   int
	season     int
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		maxPages:   resolveMaxPages(cfg.MaxPages),
		season:     cfg.Season,
	}
}

// FetchRoster retrieves the full player list, paging until exhausted.
func (c *Client) FetchRoster(ctx context.Context) ([]domain.Player, error) {
	page := 1
	roster := make([]domain.Player, 0)

	for {
		req, err := c.buildRequest(ctx, "/players", map[string]string{
			"per_page": strconv.Itoa(defaultPerPage),
			"page":     strconv.Itoa(page),
		})
		if err != nil {
			return nil, err
		}

		var payload playersResponse
		if err := c.doJSON(req, &payload); err != nil {
			return nil, err
		}

		for _, p := range payload.Data {
			roster = append(roster, mapPlayer(p))
		}

		totalPages := payload.Meta.TotalPages
		if totalPages > 0 {
			if page >= totalPages {
				break
			}
		} else if len(payload.Data) < defaultPerPage {
			break
		}
		if page >= c.maxPages {
			break
		}
		page++
	}

	return roster, nil
}

// GetPlayerStat looks up a player by canonical name and returns the
// requested advanced season average. Unknown players and metrics report
// providers.ErrStatNotFound.
func (c *Client) GetPlayerStat(ctx context.Context, player string, metric string) (float64, error) {
	id, err := c.findPlayerID(ctx, player)
	if err != nil {
		return 0, err
	}

	req, err := c.buildRequest(ctx, "/season_averages/advanced", map[string]string{
		"season":       strconv.Itoa(c.resolveSeason()),
		"player_ids[]": strconv.Itoa(id),
	})
	if err != nil {
		return 0, err
	}

	var payload advancedResponse
	if err := c.doJSON(req, &payload); err != nil {
		return 0, err
	}
	if len(payload.Data) == 0 {
		return 0, fmt.Errorf("%s: no averages for %q: %w", providerName, player, providers.ErrStatNotFound)
	}

	value, ok := metricValue(payload.Data[0], metric)
	if !ok {
		return 0, fmt.Errorf("%s: unsupported metric %q: %w", providerName, metric, providers.ErrStatNotFound)
	}
	return value, nil
}

func (c *Client) findPlayerID(ctx context.Context, player string) (int, error) {
	req, err := c.buildRequest(ctx, "/players", map[string]string{
		"search":   searchTerm(player),
		"per_page": strconv.Itoa(defaultPerPage),
	})
	if err != nil {
		return 0, err
	}

	var payload playersResponse
	if err := c.doJSON(req, &payload); err != nil {
		return 0, err
	}

	for _, p := range payload.Data {
		if strings.EqualFold(fullName(p), player) {
			return p.ID, nil
		}
	}
	return 0, fmt.Errorf("%s: player %q not in upstream roster: %w", providerName, player, providers.ErrStatNotFound)
}

func (c *Client) buildRequest(ctx context.Context, path string, params map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %d: %s", providerName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) resolveSeason() int {
	if c.season > 0 {
		return c.season
	}
	return seasonutil.SeasonStartYear(c.now())
}

// searchTerm uses the last name; the upstream search matches on either name
// part and last names discriminate better.
func searchTerm(player string) string {
	fields := strings.Fields(player)
	if len(fields) == 0 {
		return player
	}
	return fields[len(fields)-1]
}
