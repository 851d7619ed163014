package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/platform/logging"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/platform/resilience"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/usecase"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	defaultSeason  = 2025
	keyHeader      = "x-apisports-key"
)

var errAPIFootballTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Key            string
	Season         int
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the API-Football v3 fixtures endpoint. A circuit
// breaker and request coalescing sit in front of the HTTP layer so that
// a struggling provider is not hammered by concurrent league syncs.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	key            string
	season         int
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ usecase.UpstreamProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	// Callers may hand in a shared client; work on a copy so the
	// timeout default never leaks back into it.
	var httpClient http.Client
	if cfg.HTTPClient != nil {
		httpClient = *cfg.HTTPClient
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = cfg.Timeout
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	season := cfg.Season
	if season <= 0 {
		season = defaultSeason
	}

	return &Client{
		httpClient:     &httpClient,
		baseURL:        baseURL,
		key:            strings.TrimSpace(cfg.Key),
		season:         season,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}
}

func (c *Client) FixturesByDate(ctx context.Context, leagueID int64, date string) ([]usecase.UpstreamFixture, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("league id must be greater than zero")
	}

	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(c.season),
		"date":   date,
	}
	items, err := c.fetchFixtures(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures league_id=%d date=%s: %w", leagueID, date, err)
	}
	return items, nil
}

func (c *Client) FixturesUpcoming(ctx context.Context, leagueID int64, next int) ([]usecase.UpstreamFixture, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("league id must be greater than zero")
	}
	if next <= 0 {
		next = 50
	}

	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(c.season),
		"next":   strconv.Itoa(next),
	}
	items, err := c.fetchFixtures(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch upcoming fixtures league_id=%d next=%d: %w", leagueID, next, err)
	}
	return items, nil
}

func (c *Client) fetchFixtures(ctx context.Context, query map[string]string) ([]usecase.UpstreamFixture, error) {
	var envelope fixturesEnvelope
	if err := c.doJSON(ctx, "/fixtures", query, &envelope); err != nil {
		return nil, err
	}

	out := make([]usecase.UpstreamFixture, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		out = append(out, usecase.UpstreamFixture{
			FixtureID:     item.Fixture.ID,
			KickoffAt:     strings.TrimSpace(item.Fixture.Date),
			StatusCode:    strings.TrimSpace(item.Fixture.Status.Short),
			VenueName:     strings.TrimSpace(item.Fixture.Venue.Name),
			VenueCity:     strings.TrimSpace(item.Fixture.Venue.City),
			HomeTeamName:  strings.TrimSpace(item.Teams.Home.Name),
			HomeTeamBadge: strings.TrimSpace(item.Teams.Home.Logo),
			AwayTeamName:  strings.TrimSpace(item.Teams.Away.Name),
			AwayTeamBadge: strings.TrimSpace(item.Teams.Away.Logo),
			LeagueID:      item.League.ID,
			LeagueName:    strings.TrimSpace(item.League.Name),
			LeagueType:    strings.TrimSpace(item.League.Type),
			Round:         strings.TrimSpace(item.League.Round),
		})
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "state", c.breaker.State().String())
			return fmt.Errorf("%w: fixtures provider is temporarily unavailable", usecase.ErrUpstreamUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errAPIFootballTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return fmt.Errorf("%w: %s", usecase.ErrUpstreamUnavailable, sanitizeSensitiveText(err.Error(), c.key))
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode provider payload: %v", usecase.ErrUpstreamUnavailable, err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set(keyHeader, c.key)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errAPIFootballTransient, sanitizeSensitiveText(err.Error(), c.key))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errAPIFootballTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errAPIFootballTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if key != "" {
		value = strings.ReplaceAll(value, key, "REDACTED")
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
