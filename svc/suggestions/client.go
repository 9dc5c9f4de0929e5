package suggestions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dmitrymomot/petadopt/pkg/logger"
	"github.com/dmitrymomot/petadopt/svc/animals"
)

// User-facing outcomes. The keys are translation keys for the messages.
const (
	MessageUnavailable = "Unable to load suggestions."
	MessageEmpty       = "No suggestions available at the moment."

	KeyUnavailable = "suggestions.unavailable"
	KeyEmpty       = "suggestions.empty"
)

const randomAnimalsPath = "/api/random-animals"

var errNotAList = errors.New("response is not a JSON array")

// Suggestions is what a detail page shows under "you may also like".
// Exactly one of Animals or Message is set.
type Suggestions struct {
	Animals    []animals.Animal
	Message    string
	MessageKey string
}

// Client fetches random listings from the catalogue API. A fetch is never
// retried and failures surface only as a user message.
type Client struct {
	http  *resty.Client
	count int
	log   *slog.Logger
}

func NewClient(cfg Config, log *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	if cfg.Count <= 0 {
		cfg.Count = 3
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(cfg.Timeout).
			SetRetryCount(0).
			SetHeader("Accept", "application/json"),
		count: cfg.Count,
		log:   log,
	}
}

// Suggest asks for the configured number of random listings and drops the
// one currently shown.
func (c *Client) Suggest(ctx context.Context, currentID int64) Suggestions {
	list, err := c.fetch(ctx, c.count)
	if err != nil {
		c.log.WarnContext(ctx, "failed to load suggestions",
			logger.Component("suggestions"),
			logger.AnimalID(currentID),
			logger.Error(err),
		)
		return Suggestions{Message: MessageUnavailable, MessageKey: KeyUnavailable}
	}

	filtered := make([]animals.Animal, 0, len(list))
	for _, a := range list {
		if a.ID != currentID {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == 0 {
		return Suggestions{Message: MessageEmpty, MessageKey: KeyEmpty}
	}
	return Suggestions{Animals: filtered}
}

func (c *Client) fetch(ctx context.Context, count int) ([]animals.Animal, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("count", strconv.Itoa(count)).
		Get(randomAnimalsPath)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d", resp.StatusCode())
	}

	var list []animals.Animal
	if err := json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if list == nil {
		return nil, errNotAList
	}
	return list, nil
}
