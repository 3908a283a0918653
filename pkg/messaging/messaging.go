// Package messaging carries the single request/response exchange between
// the presenter and the extractor.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/dtnitsch/diary-logs/models"
	"github.com/dtnitsch/diary-logs/pkg/extractor"
)

// HandlerFunc answers one message. The response must be JSON-serializable;
// a nil response is sent as null.
type HandlerFunc func(ctx context.Context, msg models.Message) (any, error)

// Router dispatches messages to handlers by type.
type Router struct {
	handlers map[string]HandlerFunc
	logger   *slog.Logger
}

func NewRouter(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Router{
		handlers: make(map[string]HandlerFunc),
		logger:   logger,
	}
}

// Handle registers h for msgType, replacing any previous handler.
func (r *Router) Handle(msgType string, h HandlerFunc) {
	r.handlers[msgType] = h
}

// Dispatch runs the handler for msg and returns its JSON-encoded response.
// answered is false when msg has no type or no handler is registered for it.
func (r *Router) Dispatch(ctx context.Context, msg models.Message) (resp json.RawMessage, answered bool, err error) {
	if msg.Type == "" {
		return nil, false, nil
	}
	h, ok := r.handlers[msg.Type]
	if !ok {
		r.logger.Debug("Ignoring message", "type", msg.Type)
		return nil, false, nil
	}

	out, err := h(ctx, msg)
	if err != nil {
		return nil, true, fmt.Errorf("handler %s failed: %w", msg.Type, err)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, true, fmt.Errorf("failed to encode %s response: %w", msg.Type, err)
	}
	return data, true, nil
}

// Source produces the extraction result the fetchDiaryLogs handler answers with.
type Source interface {
	DiaryLogs(ctx context.Context) (extractor.Result, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (extractor.Result, error)

func (f SourceFunc) DiaryLogs(ctx context.Context) (extractor.Result, error) {
	return f(ctx)
}

// DiaryLogsHandler answers fetchDiaryLogs with the records from src, or
// null when src found no snapshot container.
func DiaryLogsHandler(src Source) HandlerFunc {
	return func(ctx context.Context, _ models.Message) (any, error) {
		res, err := src.DiaryLogs(ctx)
		if err != nil {
			return nil, err
		}
		if !res.Found {
			return nil, nil
		}
		return res.Records, nil
	}
}
