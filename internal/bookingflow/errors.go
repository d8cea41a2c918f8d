package bookingflow

import (
	"errors"
	"fmt"
)

// Local precondition failures. All three are detected before any network
// call is made.
var (
	// ErrAuthRequired means no authenticated account is present; the caller
	// should redirect to login preserving the return path.
	ErrAuthRequired = errors.New("login required before booking")

	// ErrEmptySelection means no seat codes were selected.
	ErrEmptySelection = errors.New("select at least one seat")

	// ErrMissingFare means the trip carries no resolvable fare id.
	ErrMissingFare = errors.New("fare information is missing for this trip")

	// ErrSubmitInFlight rejects a re-entrant submit while one is pending.
	ErrSubmitInFlight = errors.New("a booking submission is already in flight")
)

// NetworkError wraps transport failures and non-JSON responses. It is never
// retried automatically.
type NetworkError struct {
	Op  string
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e NetworkError) Unwrap() error { return e.Err }

// ServerRejectedError carries the server's own message for a non-2xx
// response, verbatim, so the UI can show exactly what the backend said.
type ServerRejectedError struct {
	StatusCode int
	Message    string
}

func (e ServerRejectedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("booking failed (status %d)", e.StatusCode)
}

func IsNetworkError(err error) bool {
	var target NetworkError
	return errors.As(err, &target)
}

func IsServerRejected(err error) bool {
	var target ServerRejectedError
	return errors.As(err, &target)
}
