package llm

import (
	"context"
	"errors"
)

// Client is a minimal completion interface to allow pluggable runtimes.
// One prompt in, one whole generated string out; streaming is a boundary
// concern, not part of this contract.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrUnavailable means the completion runtime could not be reached
	// (connection refused, timeout, non-2xx transport failure).
	ErrUnavailable = errors.New("completion runtime unavailable")

	// ErrGeneration means the runtime was reached but returned an error
	// payload instead of generated text.
	ErrGeneration = errors.New("generation failed")
)
