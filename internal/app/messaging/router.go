// Package messaging routes commands posted by the window's pages to the
// application use cases and fans out push events.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/chanomhub/desktop/internal/logging"
)

var (
	// ErrUnknownCommand is returned for a type with no registered handler.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidPayload is returned when a payload does not decode.
	ErrInvalidPayload = errors.New("invalid payload")
)

// Request is the envelope a page posts.
type Request struct {
	Type      string          `json:"type"`
	RequestID string          `json:"requestId"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Response answers exactly one Request. Data and Error are exclusive.
type Response struct {
	RequestID string `json:"requestId"`
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Handler handles one command type.
type Handler interface {
	Handle(ctx context.Context, payload json.RawMessage) (any, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Handle calls f(ctx, payload).
func (f HandlerFunc) Handle(ctx context.Context, payload json.RawMessage) (any, error) {
	return f(ctx, payload)
}

// Router dispatches requests to registered handlers.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]Handler)}
}

// Register binds handler to msgType, replacing any previous binding.
func (r *Router) Register(msgType string, handler Handler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[msgType] = handler
	return nil
}

// Types returns the registered command types.
func (r *Router) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		out = append(out, t)
	}
	return out
}

// Dispatch runs the handler for req. Handler errors become Response.Error.
func (r *Router) Dispatch(ctx context.Context, req Request) Response {
	log := logging.FromContext(ctx).With().
		Str("component", "message-router").
		Str("type", req.Type).
		Str("request_id", req.RequestID).
		Logger()

	resp := Response{RequestID: req.RequestID, Type: req.Type}

	r.mu.RLock()
	handler, ok := r.handlers[req.Type]
	r.mu.RUnlock()
	if !ok {
		log.Warn().Msg("no handler registered for message type")
		resp.Error = fmt.Errorf("%w: %q", ErrUnknownCommand, req.Type).Error()
		return resp
	}

	data, err := handler.Handle(ctx, req.Payload)
	if err != nil {
		log.Error().Err(err).Msg("message handler returned error")
		resp.Error = err.Error()
		return resp
	}

	log.Debug().Msg("message handled")
	resp.Data = data
	return resp
}

// DispatchJSON decodes raw as a Request, dispatches it and encodes the reply.
func (r *Router) DispatchJSON(ctx context.Context, raw []byte) ([]byte, error) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if req.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrInvalidPayload)
	}

	data, err := json.Marshal(r.Dispatch(ctx, req))
	if err != nil {
		return nil, fmt.Errorf("marshal response: %w", err)
	}
	return data, nil
}

// decodeString reads a payload that must be a single JSON string.
func decodeString(payload json.RawMessage) (string, error) {
	var s string
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: expected a string", ErrInvalidPayload)
	}
	if err := json.Unmarshal(payload, &s); err != nil {
		return "", fmt.Errorf("%w: expected a string: %w", ErrInvalidPayload, err)
	}
	return s, nil
}
