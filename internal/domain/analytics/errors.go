package analytics

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// QuotationNotFoundError reports a lookup for an id with no matching record.
type QuotationNotFoundError struct {
	QuotationID int64
}

func (e *QuotationNotFoundError) Error() string {
	return fmt.Sprintf("quotation %d not found", e.QuotationID)
}

func (e *QuotationNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidArgumentError reports a malformed id, a malformed date or an
// inverted date range. Field names the offending input.
type InvalidArgumentError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
