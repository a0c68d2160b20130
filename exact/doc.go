// Package exact provides the investo formulas on decimal values.
//
// Amounts are Money: a decimal value in a currency. Asset counts are Quantity
// and percentages are Percent. Computations are exact up to the decimal
// division precision, so that 0.1 + 0.2 is 0.3 and ten trades of 0.1 add up
// to one.
//
// A Money with no currency is weak: it takes the currency of the value it is
// combined with. This makes the zero Money a convenient "no fee". Combining
// two different currencies is reported with ErrCurrencyMismatch.
package exact
