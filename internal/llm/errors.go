package llm

import "errors"

var (
	// ErrUnavailable indicates the Ollama server is unreachable.
	ErrUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
