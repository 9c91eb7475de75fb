package kernel

import (
	"doctrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Weight is a mass in kilograms, rounded to three decimal places. The zero
// value means "not yet known" and is valid.
type Weight struct {
	kg decimal.Decimal
}

// NewWeight rejects negative masses.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if kg.IsNegative() {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg.String(), "0", "unbounded")
	}
	return Weight{kg: kg.Round(3)}, nil
}

// ParseWeight accepts extracted text such as "1,250.5" or "1250.5 kg".
func ParseWeight(s string) (Weight, error) {
	d, err := ParseDecimal(trimUnit(s))
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	return NewWeight(d)
}

func (w Weight) Kilograms() decimal.Decimal {
	return w.kg
}

func (w Weight) IsZero() bool {
	return w.kg.IsZero()
}

// Add returns the sum of both weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{kg: w.kg.Add(other.kg)}
}

func (w Weight) String() string {
	return w.kg.StringFixed(3) + " kg"
}

func trimUnit(s string) string {
	for _, suffix := range []string{"kgs", "KGS", "kg", "KG", "Kg"} {
		if n := len(s) - len(suffix); n >= 0 && s[n:] == suffix {
			return s[:n]
		}
	}
	return s
}
