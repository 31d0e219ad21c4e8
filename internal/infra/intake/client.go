package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mealping/mealping-coaching-core/internal/domain"
	"github.com/mealping/mealping-coaching-core/internal/observability/tracing"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) GetDailyIntake(ctx context.Context, userID string, day time.Time) (*DailyIntakeResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/api/v1/intake/daily"
	q := u.Query()
	q.Set("user_id", userID)
	q.Set("day", domain.DayKey(day))
	u.RawQuery = q.Encode()

	var payload DailyIntakeResponse
	if err := c.getJSON(ctx, "intake.daily", u.String(), &payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

func (c *Client) GetPatternSummary(ctx context.Context, userID string) (*PatternSummaryResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/api/v1/intake/pattern"
	q := u.Query()
	q.Set("user_id", userID)
	u.RawQuery = q.Encode()

	var payload PatternSummaryResponse
	if err := c.getJSON(ctx, "intake.pattern", u.String(), &payload); err != nil {
		return nil, err
	}

	// Only the top three hours feed the planner.
	if len(payload.TopHours) > 3 {
		payload.TopHours = payload.TopHours[:3]
	}

	return &payload, nil
}

func (c *Client) getJSON(ctx context.Context, operation, rawURL string, out any) error {
	slog.Debug("fetching from intake history service",
		slog.String("url", rawURL),
	)

	ctx, span := tracing.StartExternalAPISpan(ctx, operation, rawURL)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		tracing.RecordError(span, err)
		slog.ErrorContext(ctx, "failed to send request to intake history service",
			slog.String("url", rawURL),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("intake history service returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
