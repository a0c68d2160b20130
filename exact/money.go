package exact

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/etnz/investo"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value      decimal.Decimal // as major unit value
	cur        string
	fractional bool // true to persist in full digits
}

// M returns 'value' units of 'currency'. An empty currency is weak and adopts
// the currency of the other operand in binary operations.
//
// The currency is not checked here: formulas and MarshalJSON report unknown
// codes, see ValidateCurrency.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("%w: unknown currency %q", investo.ErrInvalidArgument, code)
	}
	return nil
}

// currency returns the go-money currency of m. It is never nil, an unknown
// code yields a currency with no minor unit.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the money value formatted for its currency, like "$1,234.50".
// A weak amount is printed as a plain decimal.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.String()
	}
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string          { return m.cur }
func (m Money) Decimal() decimal.Decimal  { return m.value }
func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsPositive() bool          { return m.value.IsPositive() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) Mul(n Quantity) Money      { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money      { return Money{value: m.value.Div(n.value), cur: m.cur} }
func (m Money) DivPrice(n Money) Quantity { return Quantity{value: m.value.Div(n.value)} }

// Add and Sub panic when m and n are in two different currencies. Formulas
// check currencies with common first.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// cur returns the currency of a binary operation, "" adopting the other one.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic(fmt.Sprintf("%v: %s and %s", ErrCurrencyMismatch, A.cur, B.cur))
	}
	return A.cur
}

// common returns the currency shared by all amounts, ignoring weak ones.
func common(amounts ...Money) (string, error) {
	var c string
	for _, m := range amounts {
		if m.cur == "" {
			continue
		}
		if err := ValidateCurrency(m.cur); err != nil {
			return "", err
		}
		if c != "" && c != m.cur {
			return "", fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, c, m.cur)
		}
		c = m.cur
	}
	return c, nil
}

// zero returns 0 in currency c.
func zero(c string) Money { return Money{cur: c} }

// SignedString is String with an explicit "+" on gains. A zero amount is "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// fullDigits returns a copy of m marshalled with all its digits.
func (m Money) fullDigits() Money {
	m.fractional = true
	return m
}

// MarshalJSON encodes m as {"currency":"EUR","amount":"12.5"}. The amount is
// rounded to the currency minor unit, except for per asset prices.
// An unknown non empty currency is an error, it could not be read back.
func (m Money) MarshalJSON() ([]byte, error) {
	if m.cur != "" {
		if err := ValidateCurrency(m.cur); err != nil {
			return nil, err
		}
	}
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	rounded := m.value // no rounding by default
	if !m.fractional {
		rounded = m.value.Round(int32(m.currency().Fraction))
	}
	w.Append("amount", rounded)
	return w.MarshalJSON()
}

// UnmarshalJSON decodes the MarshalJSON format.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v struct {
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Currency != "" {
		if err := ValidateCurrency(v.Currency); err != nil {
			return err
		}
	}
	*m = Money{value: v.Amount, cur: v.Currency}
	return nil
}
