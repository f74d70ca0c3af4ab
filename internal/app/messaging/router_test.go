package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Register(t *testing.T) {
	r := NewRouter()
	assert.Error(t, r.Register("", HandlerFunc(func(context.Context, json.RawMessage) (any, error) { return nil, nil })))
	assert.Error(t, r.Register("x", nil))
	require.NoError(t, r.Register("x", HandlerFunc(func(context.Context, json.RawMessage) (any, error) { return nil, nil })))
	assert.Equal(t, []string{"x"}, r.Types())
}

func TestRouter_Dispatch(t *testing.T) {
	r := NewRouter()
	require.NoError(t, r.Register("echo", HandlerFunc(func(_ context.Context, p json.RawMessage) (any, error) {
		return decodeString(p)
	})))
	require.NoError(t, r.Register("boom", HandlerFunc(func(context.Context, json.RawMessage) (any, error) {
		return nil, errors.New("disk on fire")
	})))

	ctx := context.Background()

	resp := r.Dispatch(ctx, Request{Type: "echo", RequestID: "1", Payload: json.RawMessage(`"hi"`)})
	assert.Equal(t, Response{RequestID: "1", Type: "echo", Data: "hi"}, resp)

	resp = r.Dispatch(ctx, Request{Type: "boom", RequestID: "2"})
	assert.Equal(t, "disk on fire", resp.Error)
	assert.Nil(t, resp.Data)

	resp = r.Dispatch(ctx, Request{Type: "nope", RequestID: "3"})
	assert.Contains(t, resp.Error, ErrUnknownCommand.Error())
	assert.Equal(t, "3", resp.RequestID)
}

func TestRouter_DispatchJSON(t *testing.T) {
	r := NewRouter()
	require.NoError(t, r.Register("get", HandlerFunc(func(context.Context, json.RawMessage) (any, error) {
		return []string{"a"}, nil
	})))

	out, err := r.DispatchJSON(context.Background(), []byte(`{"type":"get","requestId":"42"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"requestId":"42","type":"get","data":["a"]}`, string(out))

	_, err = r.DispatchJSON(context.Background(), []byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = r.DispatchJSON(context.Background(), []byte(`{"requestId":"1"}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDecodeString(t *testing.T) {
	s, err := decodeString(json.RawMessage(`"https://x.test/a.zip"`))
	require.NoError(t, err)
	assert.Equal(t, "https://x.test/a.zip", s)

	_, err = decodeString(nil)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = decodeString(json.RawMessage(`{"id":1}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
