package nhlstats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/pquint/onice/internal/domain/game"
	"github.com/pquint/onice/internal/domain/roster"
	"github.com/pquint/onice/internal/domain/team"
	"github.com/pquint/onice/internal/platform/logging"
	"github.com/pquint/onice/internal/usecase"
)

const (
	defaultBaseURL     = "https://statsapi.web.nhl.com/api/v1"
	expandScheduleNext = "team.schedule.next"
	expandSchedulePrev = "team.schedule.previous"
	maxResponseBytes   = 6 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Logger     *logging.Logger
}

// Client reads the public NHL stats API. It holds no per-call mutable state
// and is safe to share across concurrent requests. Calls go straight
// through: a single upstream failure fails the caller's request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

var _ usecase.GameSource = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// Schedule fetches the team's next and previous scheduled games in one read.
func (c *Client) Schedule(ctx context.Context, teamID team.ID) (game.Schedule, error) {
	if teamID <= 0 {
		return game.Schedule{}, fmt.Errorf("team id must be greater than zero")
	}

	query := url.Values{}
	query.Add("expand", expandScheduleNext)
	query.Add("expand", expandSchedulePrev)

	var env teamsEnvelope
	if err := c.doJSON(ctx, fmt.Sprintf("/teams/%d", teamID), query, &env); err != nil {
		return game.Schedule{}, fmt.Errorf("fetch team schedule team_id=%d: %w", teamID, err)
	}

	sched, err := parseSchedule(env)
	if err != nil {
		c.logger.ErrorContext(ctx, "nhlstats schedule payload rejected", "team_id", int(teamID), "error", err)
		return game.Schedule{}, err
	}

	return sched, nil
}

// Boxscore fetches full boxscore data and reduces it to the on-ice view.
func (c *Client) Boxscore(ctx context.Context, gameID game.ID) (roster.BoxscoreView, error) {
	if gameID <= 0 {
		return roster.BoxscoreView{}, fmt.Errorf("game id must be greater than zero")
	}

	var env boxscoreEnvelope
	if err := c.doJSON(ctx, fmt.Sprintf("/game/%d/boxscore", gameID), nil, &env); err != nil {
		return roster.BoxscoreView{}, fmt.Errorf("fetch boxscore game_id=%d: %w", gameID, err)
	}

	view, err := parseBoxscore(env)
	if err != nil {
		c.logger.ErrorContext(ctx, "nhlstats boxscore payload rejected", "game_id", int64(gameID), "error", err)
		return roster.BoxscoreView{}, err
	}

	return view, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: send request: %v", usecase.ErrDependencyUnavailable, err)
	}

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()
	if readErr != nil {
		return fmt.Errorf("%w: read response body: %v", usecase.ErrDependencyUnavailable, readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.ErrorContext(ctx, "nhlstats provider error",
			"url", fullURL,
			"status", resp.StatusCode,
			"body", abbreviateBody(raw),
		)
		return fmt.Errorf("provider status=%d", resp.StatusCode)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		c.logger.ErrorContext(ctx, "nhlstats payload decode failed", "url", fullURL, "error", err)
		return crerr.Wrap(errMalformedPayload, "decode provider payload")
	}

	return nil
}

func abbreviateBody(raw []byte) string {
	const limit = 512
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
