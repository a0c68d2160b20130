package exact

import (
	"github.com/etnz/investo/date"
	"github.com/shopspring/decimal"
)

// SimpleInterest returns the future value of principal at an annual rate
// (0.08 for 8%) over years, without compounding.
func SimpleInterest(principal Money, rate, years decimal.Decimal) Money {
	growth := decimal.NewFromInt(1).Add(rate.Mul(years))
	return Money{value: principal.value.Mul(growth), cur: principal.cur}
}

// SimpleProfit returns the interest earned, SimpleInterest minus principal.
func SimpleProfit(principal Money, rate, years decimal.Decimal) Money {
	return SimpleInterest(principal, rate, years).Sub(principal)
}

// SimpleInterestOver is SimpleInterest for a term given as a date range,
// counted Actual/365 Fixed.
func SimpleInterestOver(principal Money, rate decimal.Decimal, r date.Range) Money {
	return SimpleInterest(principal, rate, years(r))
}

// SimpleProfitOver is SimpleProfit for a term given as a date range.
func SimpleProfitOver(principal Money, rate decimal.Decimal, r date.Range) Money {
	return SimpleProfit(principal, rate, years(r))
}

func years(r date.Range) decimal.Decimal {
	return decimal.NewFromInt(int64(r.Days())).Div(decimal.NewFromInt(date.DaysPerYear))
}
