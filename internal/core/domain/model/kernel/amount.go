package kernel

import (
	"errors"
	"fmt"
	"strings"

	"doctrack/internal/pkg/errs"
	"doctrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrAmountIsNotConstructed is returned when validating a zero-value Amount.
var ErrAmountIsNotConstructed = errs.NewValueIsRequiredError("amount must be created via NewAmount or ParseAmount")

// Amount is a non-negative monetary value in a single currency. Values are
// rounded to two decimal places on construction.
type Amount struct { //nolint:recvcheck //using for validation
	value    decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewAmount validates the value and the three letter currency code.
func NewAmount(value decimal.Decimal, currency string) (Amount, error) {
	a := Amount{guard: guard.NewConstructorGuard()}

	if err := errors.Join(a.setValue(value), a.setCurrency(currency)); err != nil {
		return Amount{}, err
	}

	return a, nil
}

// ParseAmount accepts the textual value produced by document extraction
// ("12,450.00", "980.5") together with its currency.
func ParseAmount(value string, currency string) (Amount, error) {
	d, err := ParseDecimal(value)
	if err != nil {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewAmount(d, currency)
}

func (a Amount) Value() decimal.Decimal {
	return a.value
}

func (a Amount) Currency() string {
	return a.currency
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.value.StringFixed(2), a.currency)
}

// IsEqual compares value and currency.
func (a Amount) IsEqual(other Amount) bool {
	return a.currency == other.currency && a.value.Equal(other.value)
}

func (a Amount) Validate() error {
	return a.guard.Validate(ErrAmountIsNotConstructed)
}

func (a *Amount) setValue(value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsOutOfRangeError("amount", value.String(), "0", "unbounded")
	}
	a.value = value.Round(2)
	return nil
}

func (a *Amount) setCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not an ISO 4217 code", currency))
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not an ISO 4217 code", currency))
		}
	}
	a.currency = currency
	return nil
}

// ParseDecimal reads numbers as printed on commercial documents: thousands
// separators and surrounding whitespace are ignored.
func ParseDecimal(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return decimal.Zero, errs.NewValueIsRequiredError("number")
	}
	return decimal.NewFromString(cleaned)
}
