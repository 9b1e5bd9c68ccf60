package cycloid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is the kind of error returned for malformed or
	// out of domain inputs.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDegenerateCurve is the kind of error returned when a curve has too
	// few distinct points to operate on.
	ErrDegenerateCurve = errors.New("degenerate curve")
)

// ParamError describes an input outside of its domain. It unwraps to ErrInvalidParameter.
type ParamError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

// DegenerateError returns an ErrDegenerateCurve error with a message.
func DegenerateError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDegenerateCurve, fmt.Sprintf(format, args...))
}
