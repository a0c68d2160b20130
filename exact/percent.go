package exact

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent is a proportion times 100: P(12.5) is 12.5%.
type Percent struct {
	value decimal.Decimal
}

// P returns the percentage 'value'.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// Equal compares two percentages up to 0.0001 percent.
func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	precision := decimal.New(1, -4)
	return p.value.Sub(q.value).Abs().LessThan(precision)
}

// Ratio returns the percentage as a fraction (12.5% is 0.125).
func (p Percent) Ratio() decimal.Decimal { return p.value.Div(hundred) }

func (p Percent) Decimal() decimal.Decimal { return p.value }

func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}

// SignedString returns the percentage with an explicit sign; 0 is "-".
func (p Percent) SignedString() string {
	if p.value.Round(2).IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Percent) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}
