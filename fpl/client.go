package fpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/fpl_analyzer/model"
	log "github.com/sirupsen/logrus"
)

const (
	FPLURL = "https://fantasy.premierleague.com"

	bootstrapPath = "/api/bootstrap-static/"
	userAgent     = "fpl_analyzer/1.0"
)

var ErrFetch = errors.New("error fetching from fpl")

type Client interface {
	LoadPlayers(ctx context.Context) ([]model.Player, error)
}

type client struct {
	url        string
	httpClient *http.Client
	clock      clock.Clock
	retryDelay time.Duration
}

func New(url string, timeout, retryDelay time.Duration, clock clock.Clock) (Client, error) {
	if url == "" {
		url = FPLURL
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %v", timeout)
	}
	c := &client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock:      clock,
		retryDelay: retryDelay,
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: http.DefaultClient,
		clock:      clock.New(),
	}
}

func (c *client) LoadPlayers(ctx context.Context) ([]model.Player, error) {
	var parsed bootstrapResponse
	if err := c.getWithRetry(ctx, &parsed, bootstrapPath); err != nil {
		return nil, err
	}

	result := make([]model.Player, 0, len(parsed.Elements))
	for _, e := range parsed.Elements {
		pos := model.PositionFromElementType(e.ElementType)
		if pos == model.POS_UNKNOWN {
			log.WithFields(log.Fields{"id": e.ID, "element_type": e.ElementType}).Debug("skipping element with unknown position")
			continue
		}
		result = append(result, *e.toPlayer())
	}

	return result, nil
}

// getWithRetry makes the request and, if it failed in a way that might be
// transient (transport error or 5xx), tries exactly one more time.
func (c *client) getWithRetry(ctx context.Context, res any, path string) error {
	retry, err := c.fplRequest(ctx, res, path)
	if err == nil {
		return nil
	}
	if !retry {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	log.WithError(err).WithField("delay", c.retryDelay).Warn("fpl request failed, retrying once")
	if c.retryDelay > 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrFetch, ctx.Err())
		case <-c.clock.After(c.retryDelay):
		}
	}

	if _, err := c.fplRequest(ctx, res, path); err != nil {
		return fmt.Errorf("%w: after retry: %w", ErrFetch, err)
	}
	return nil
}

// fplRequest issues a GET and decodes the JSON body into res. The bool
// reports whether the failure is worth retrying.
func (c *client) fplRequest(ctx context.Context, res any, path string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", c.url, path), nil)
	if err != nil {
		return false, fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A cancelled context is not going to succeed the second time.
		return ctx.Err() == nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode >= http.StatusInternalServerError, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return false, fmt.Errorf("error parsing response from fpl: %w", err)
	}
	return false, nil
}
