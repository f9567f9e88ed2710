package workorder

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrNumberIsNotConstructed = errors.New("Number must be created via NewNumber constructor")

var numberPattern = regexp.MustCompile(`^[0-9]{6}$`)

// Number is the six digit business key of a work order.
type Number struct {
	value string
	guard guard.ConstructorGuard
}

// NewNumber trims raw and requires exactly six ASCII digits.
func NewNumber(raw string) (Number, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Number{}, errs.NewValueIsRequiredError("number")
	}
	if !numberPattern.MatchString(value) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%q must be exactly 6 digits", value))
	}

	return Number{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

func (n Number) String() string {
	return n.value
}
