// Package investo provides the everyday formulas of an investment tracker.
//
// The formulas are grouped by topic:
//   - Return on investment: ROI, PartialReturn and ReturnPercentage.
//   - Buying and selling: Investment, AssetsFromInvestment, PricePerAsset,
//     NetSaleProceeds, Profit and RemainingInvestment.
//   - Simple interest: SimpleInterest and SimpleProfit, with date based
//     variants SimpleInterestOver and SimpleProfitOver.
//
// Every formula is a pure function of its arguments. Inputs outside of a
// formula's domain are reported with an error wrapping ErrInvalidArgument.
// Where a fee or a withdrawal makes a value negative in a way that happens in
// real life (a fee larger than the sale), the result is floored at zero
// instead.
//
// Formulas are also registered by name (see Lookup, Formulas and Evaluate) so
// that an application can list and call them dynamically.
//
// Package exact provides the same formulas on decimal, currency aware values.
package investo
