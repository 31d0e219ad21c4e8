package calendar

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

func (c *Client) GetBusyIntervals(ctx context.Context, userID string, day time.Time) ([]domain.BusyInterval, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/api/v1/busy"
	q := u.Query()
	q.Set("user_id", userID)
	q.Set("day", domain.DayKey(day))
	u.RawQuery = q.Encode()

	slog.Debug("fetching busy intervals from calendar provider",
		slog.String("url", u.String()),
	)

	ctx, span := tracing.StartExternalAPISpan(ctx, "calendar.busy", u.String())
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		tracing.RecordError(span, err)
		slog.ErrorContext(ctx, "failed to send request to calendar provider",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("calendar provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload busyIntervalsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	intervals := make([]domain.BusyInterval, 0, len(payload.Intervals))
	for _, item := range payload.Intervals {
		intervals = append(intervals, domain.NewBusyInterval(item.Start, item.End))
	}

	return intervals, nil
}
