package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/diary-logs/models"
)

// Reply is the presenter's view of a fetchDiaryLogs response.
// Loaded is false for a null response and for every failure.
type Reply struct {
	Records []models.LogRecord
	Loaded  bool
	Err     error
}

// Client sends requests through a Router.
type Client struct {
	router *Router
}

func NewClient(router *Router) *Client {
	return &Client{router: router}
}

// FetchDiaryLogs sends one fetchDiaryLogs request. The returned channel
// delivers exactly one Reply and is then closed. There are no retries.
func (c *Client) FetchDiaryLogs(ctx context.Context) <-chan Reply {
	out := make(chan Reply, 1)

	go func() {
		defer close(out)

		done := make(chan Reply, 1)
		go func() {
			done <- c.fetch(ctx)
		}()

		select {
		case reply := <-done:
			out <- reply
		case <-ctx.Done():
			out <- Reply{Err: ctx.Err()}
		}
	}()

	return out
}

func (c *Client) fetch(ctx context.Context) Reply {
	raw, answered, err := c.router.Dispatch(ctx, models.Message{Type: models.MessageTypeFetchDiaryLogs})
	if err != nil {
		c.router.logger.Error("fetchDiaryLogs failed", "error", err)
		return Reply{Err: err}
	}
	if !answered {
		return Reply{}
	}

	var records []models.LogRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		err = fmt.Errorf("failed to decode fetchDiaryLogs response: %w", err)
		c.router.logger.Error("fetchDiaryLogs failed", "error", err)
		return Reply{Err: err}
	}
	if records == nil {
		return Reply{}
	}
	return Reply{Records: records, Loaded: true}
}
