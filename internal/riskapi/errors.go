package riskapi

import (
	"encoding/json"
	"fmt"
)

// ErrUnavailable indicates the service could not be reached or answered
// with a server-side failure. Retryable: the session is preserved and the
// user may resubmit without replaying tasks.
type ErrUnavailable struct {
	Status int // 0 when the request never completed
	Err    error
}

func (e *ErrUnavailable) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("risk service unavailable (status %d)", e.Status)
	}
	return fmt.Sprintf("risk service unreachable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrRejected indicates the service refused the submission as malformed
// (HTTP 400). Not retryable: resending the same payload cannot succeed.
type ErrRejected struct {
	Status int
	Detail string
}

func (e *ErrRejected) Error() string {
	return fmt.Sprintf("submission rejected (status %d): %s", e.Status, e.Detail)
}

// ErrInvalidResponse indicates the service answered 2xx but the body does
// not conform to the verdict schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid verdict response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
