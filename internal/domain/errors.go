package domain

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable means the external price provider could not
// resolve the symbol at all - unknown ticker, outage, or an empty
// response. It is distinct from a short-but-usable series, which is
// returned as data, and must reach the caller unreplaced so the UI can
// render a provider error instead of fabricated metrics.
var ErrDataUnavailable = errors.New("price data unavailable")

// ErrPresetNotFound is returned when a preset id does not exist.
var ErrPresetNotFound = errors.New("preset not found")

// InvalidParameterError names the request field the caller needs to
// fix. Resolvers map it to a 400.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

func NewInvalidParameterError(field, reason string) InvalidParameterError {
	return InvalidParameterError{Field: field, Reason: reason}
}
