package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when user text cannot be converted into the value an
// action needs. It is distinct from the validation errors of the account itself.
var ErrInvalidInput = errors.New("invalid input")

// ParseAmount converts user text to an amount. Surrounding whitespace is ignored.
// Range checks are left to the account.
func ParseAmount(text string) (float64, error) {
	text = strings.TrimSpace(text)
	amount, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, text)
	}
	return amount, nil
}
