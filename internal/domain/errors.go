package domain

import "fmt"

// SimError is the unified error type for the engine.
// Each error has a numeric code and human-readable message.
type SimError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *SimError) Error() string {
	return fmt.Sprintf("outbreak error %d: %s", e.Code, e.Message)
}

// NewSimError creates a new SimError.
func NewSimError(code int, msg string) *SimError {
	return &SimError{Code: code, Message: msg}
}

// WrapSimError creates a SimError that includes a cause.
func WrapSimError(code int, msg string, cause error) *SimError {
	return &SimError{Code: code, Message: fmt.Sprintf("%s: %v", msg, cause)}
}

// ---- Parameter / configuration errors (-32010 to -32039) ----

var (
	ErrInvalidParameter = &SimError{Code: -32010, Message: "distribution parameter outside its domain"}
	ErrNonPositiveR0    = &SimError{Code: -32011, Message: "R0 must be positive"}
	ErrConfigInvalid    = &SimError{Code: -32012, Message: "invalid configuration"}
	ErrNoIntervals      = &SimError{Code: -32013, Message: "output interval must be positive"}
)

// ---- Store errors (-32130 to -32159) ----

var (
	ErrStoreInit   = &SimError{Code: -32130, Message: "failed to initialize store"}
	ErrStoreQuery  = &SimError{Code: -32131, Message: "store query failed"}
	ErrStoreWrite  = &SimError{Code: -32132, Message: "store write failed"}
	ErrRunNotFound = &SimError{Code: -32133, Message: "run not found"}
)
