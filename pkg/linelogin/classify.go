package linelogin

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"
)

type outcome int

const (
	outcomeAPIError outcome = iota
	outcomeSuccess
)

// attempt pairs a shape with the result produced when a document matches it.
// Attempts are tried in order; the first match wins.
type attempt struct {
	applies func(status int) bool
	shape   shape
	outcome outcome
}

func anyStatus(int) bool { return true }

func errorStatus(status int) bool { return status >= http.StatusBadRequest }

// attemptsFor returns the classification order for a success shape. The
// provider does not always pair an error status with an error envelope, so
// the status-indicated shape is tried first and the other shape before giving up.
func attemptsFor(success shape) []attempt {
	return []attempt{
		{applies: errorStatus, shape: errorResponseShape, outcome: outcomeAPIError},
		{applies: anyStatus, shape: success, outcome: outcomeSuccess},
		{applies: anyStatus, shape: errorResponseShape, outcome: outcomeAPIError},
	}
}

// classify turns a received status and body into either a T or one of the
// package's error kinds.
func classify[T shaped](status int, body []byte) (T, error) {
	var zero T

	if !utf8.Valid(body) {
		return zero, newSystemError(errors.New("response body is not valid UTF-8"))
	}
	raw := string(body)

	doc := body
	var generic any
	if err := json.Unmarshal(doc, &generic); err != nil {
		return zero, newSystemError(err)
	}

	var successErr error
	for _, a := range attemptsFor(zero.shape()) {
		if !a.applies(status) {
			continue
		}
		switch a.outcome {
		case outcomeAPIError:
			var envelope ErrorResponse
			if err := a.shape.decode(doc, &envelope); err != nil {
				continue
			}
			return zero, &APIError{
				Status:  status,
				Body:    envelope,
				RawBody: raw,
			}
		case outcomeSuccess:
			var out T
			if err := a.shape.decode(doc, &out); err != nil {
				successErr = err
				continue
			}
			return out, nil
		}
	}

	if successErr == nil {
		successErr = errors.New("response matched no known shape")
	}
	return zero, newSystemError(successErr)
}
