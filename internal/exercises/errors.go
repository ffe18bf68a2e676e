package exercises

import "fmt"

// NetworkError is returned when the exercises API could not be
// reached or answered with a non-OK status.
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("exercises api: %s", e.Err)
	}
	return fmt.Sprintf("exercises api: unexpected status %d", e.StatusCode)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
