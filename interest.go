package investo

import "github.com/etnz/investo/date"

// SimpleInterest returns the future value of principal invested for years at
// an annual rate (0.08 for 8%) without compounding.
//
//	value = principal * (1 + rate * years)
//
// rate can be negative and years can be zero.
func SimpleInterest(principal, rate, years float64) float64 {
	return principal * (1 + rate*years)
}

// SimpleProfit returns the interest earned by SimpleInterest, that is the
// future value minus the principal.
func SimpleProfit(principal, rate, years float64) float64 {
	return SimpleInterest(principal, rate, years) - principal
}

// SimpleInterestOver is SimpleInterest for a term given as a date range.
// The term is counted Actual/365 Fixed, see date.Range.Years.
func SimpleInterestOver(principal, rate float64, r date.Range) float64 {
	return SimpleInterest(principal, rate, r.Years())
}

// SimpleProfitOver is SimpleProfit for a term given as a date range.
func SimpleProfitOver(principal, rate float64, r date.Range) float64 {
	return SimpleProfit(principal, rate, r.Years())
}
