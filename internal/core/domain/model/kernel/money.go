package kernel

import (
	"fmt"
	"math"

	"shiporders/internal/pkg/errs"
	"shiporders/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using the NewMoney constructor to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money represents a non-negative monetary amount, used for order totals and
// shipment costs. Money is an immutable value object; the zero value is invalid
// and will fail validation - use the constructor to create instances.
//
// Example:
//
//	total, err := kernel.NewMoney(125.00)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Total: %s", total) // Output: Total: 125.00
type Money struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from the given amount.
// The amount must be finite and not negative.
//
// Returns:
//   - Money: A valid monetary amount
//   - error: Validation error if the amount is negative, NaN, or infinite
func NewMoney(amount float64) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// Validate checks if the Money was properly constructed using the constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary amount as a float64.
func (m Money) Amount() float64 {
	return m.amount
}

// IsEqual compares two monetary amounts for exact equality.
// Returns an error if either value was not properly constructed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}
	return m.amount == other.amount, nil
}

// String returns the amount formatted with two decimal places, e.g. "125.00".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}

func (m *Money) setAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 0, math.MaxFloat64)
	}
	m.amount = amount
	return nil
}
