package watson

import (
	"errors"
	"fmt"
)

var (
	// The service answered 400, its way of saying the text can't be analyzed.
	ErrRejected = errors.New("emotion service rejected the text")
	// The response was valid JSON but had no emotionPredictions[0].emotion object.
	ErrNoPrediction = errors.New("no usable emotion prediction in response")
)

// RequestError means the round trip itself failed (connection, timeout, etc).
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("emotion request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ResponseFormatError means the response body wasn't JSON at all.
type ResponseFormatError struct {
	StatusCode int
	Body       string
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("emotion response was not valid JSON (status %d)", e.StatusCode)
}
