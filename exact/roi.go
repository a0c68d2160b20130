package exact

// ROI returns the return on investment as a percentage.
//
//	ROI = (actualReturn - investment) / investment * 100
//
// investment must be strictly positive. actualReturn is not checked.
func ROI(investment, actualReturn Money) (Percent, error) {
	if _, err := common(investment, actualReturn); err != nil {
		return Percent{}, err
	}
	if !investment.IsPositive() {
		return Percent{}, invalid("investment must be greater than 0, got %s", investment.value)
	}
	gain := actualReturn.value.Sub(investment.value)
	return Percent{value: gain.Mul(hundred).Div(investment.value)}, nil
}

// PartialReturn returns target percent of the investment.
//
// investment must be ≥ 0 and target within [0%, 100%].
func PartialReturn(investment Money, target Percent) (Money, error) {
	if _, err := common(investment); err != nil {
		return Money{}, err
	}
	if investment.IsNegative() {
		return Money{}, invalid("investment must be ≥ 0, got %s", investment.value)
	}
	if target.value.IsNegative() || target.value.GreaterThan(hundred) {
		return Money{}, invalid("target percentage must be between 0 and 100, got %s", target.value)
	}
	return Money{value: investment.value.Mul(target.Ratio()), cur: investment.cur}, nil
}

// ReturnPercentage returns the percentage of the investment desiredReturn
// represents. investment must be strictly positive.
func ReturnPercentage(investment, desiredReturn Money) (Percent, error) {
	if _, err := common(investment, desiredReturn); err != nil {
		return Percent{}, err
	}
	if !investment.IsPositive() {
		return Percent{}, invalid("investment must be greater than 0, got %s", investment.value)
	}
	return Percent{value: desiredReturn.value.Mul(hundred).Div(investment.value)}, nil
}
