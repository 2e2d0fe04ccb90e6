package domain

import (
	"errors"
	"net/http"
)

// Kind classifies failures surfaced to clients.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindPipeline
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPipeline:
		return "pipeline"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// StatusCode is the HTTP status a failure of kind k is rendered with.
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

const (
	MsgMissingDescription = "Please provide a case description"
	MsgEmptyDescription   = "Case description cannot be empty"
	MsgNotFound           = "Endpoint not found"
	MsgInternal           = "Internal server error"
	MsgRateLimited        = "Too many requests, please retry later"
)

// Error is a classified failure. For pipeline errors Message is empty and
// the cause's text is reported unchanged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

var (
	ErrMissingDescription = &Error{Kind: KindValidation, Message: MsgMissingDescription}
	ErrEmptyDescription   = &Error{Kind: KindValidation, Message: MsgEmptyDescription}
	ErrRateLimited        = &Error{Kind: KindRateLimited, Message: MsgRateLimited}
)

// PipelineError marks err as a failure raised by the reasoning pipeline.
func PipelineError(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindPipeline, Err: err}
}

// KindOf reports the kind of err. Unclassified errors are internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// ClientMessage is the text shown to clients for err. Internal failures
// never expose their detail.
func ClientMessage(err error) string {
	if KindOf(err) == KindInternal {
		return MsgInternal
	}
	var de *Error
	errors.As(err, &de)
	return de.Error()
}
