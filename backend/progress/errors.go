package progress

import (
	"errors"
	"fmt"
)

// ErrInvalidData is matched by every *InvalidDataError via errors.Is.
var ErrInvalidData = errors.New("invalid progress data")

// InvalidDataError reports a row that breaks the aggregator's input contract.
type InvalidDataError struct {
	Entity string
	ID     string
	Field  string
	Reason string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s %s", e.Entity, e.ID, e.Field, e.Reason)
}

func (e *InvalidDataError) Is(target error) bool {
	return target == ErrInvalidData
}
