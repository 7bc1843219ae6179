// Package validate parses user-entered numeric fields into typed values
// before any ledger call. Form input arrives as strings; parsing happens
// here, exactly once, so NaN-producing coercions never reach stored data.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Error describes a rejected input field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Amount parses a monetary amount. Grouping commas are tolerated.
func Amount(field, raw string) (float64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return 0, &Error{Field: field, Message: "value is required"}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, &Error{Field: field, Message: fmt.Sprintf("%q is not a number", raw)}
	}
	f, _ := d.Float64()
	return f, nil
}

// PositiveAmount parses a monetary amount that must be greater than zero.
func PositiveAmount(field, raw string) (float64, error) {
	f, err := Amount(field, raw)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, &Error{Field: field, Message: "must be greater than zero"}
	}
	return f, nil
}

// NonNegativeAmount parses a monetary amount that must not be negative.
func NonNegativeAmount(field, raw string) (float64, error) {
	f, err := Amount(field, raw)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, &Error{Field: field, Message: "must not be negative"}
	}
	return f, nil
}

// Rate parses an annual percentage rate, zero allowed.
func Rate(field, raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	return NonNegativeAmount(field, raw)
}

// Days parses a whole day count, zero allowed.
func Days(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &Error{Field: field, Message: fmt.Sprintf("%q is not a whole number", raw)}
	}
	if n < 0 {
		return 0, &Error{Field: field, Message: "must not be negative"}
	}
	return n, nil
}
