package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// InputKey is the key under which the case description is handed to the
// reasoning pipeline.
const InputKey = "user_input"

// Inputs is the mapping passed to Run.
type Inputs map[string]string

// Pipeline is the external reasoning process. Run blocks until the
// analysis is finished and returns a value convertible to text.
// Implementations are shared by concurrent requests and must not keep
// per-call state.
type Pipeline interface {
	Run(ctx context.Context, inputs Inputs) (any, error)
}

// Func adapts an ordinary function to Pipeline.
type Func func(ctx context.Context, inputs Inputs) (any, error)

func (f Func) Run(ctx context.Context, inputs Inputs) (any, error) {
	return f(ctx, inputs)
}

// request is the body sent to both the HTTP and the Python backends.
type request struct {
	Inputs Inputs `json:"inputs"`
}

// ErrNoResult is returned when a backend answers without a result.
var ErrNoResult = errors.New("pipeline returned no result")

// reply is the body read back from both backends.
type reply struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error,omitempty"`
	Detail string          `json:"detail,omitempty"`
}

func (r reply) message() string {
	if r.Error != "" {
		return r.Error
	}
	return r.Detail
}

// result decodes the result field. A missing or null result is an error.
func (r reply) result() (any, error) {
	raw := bytes.TrimSpace(r.Result)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, ErrNoResult
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode pipeline result: %w", err)
	}
	return v, nil
}
