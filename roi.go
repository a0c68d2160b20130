package investo

// ROI returns the return on investment as a percentage.
//
//	ROI = (actualReturn - investment) / investment * 100
//
// The result is negative when actualReturn is lower than the investment.
// investment must be strictly positive, actualReturn is not checked: a return
// can legitimately be negative.
func ROI(investment, actualReturn float64) (float64, error) {
	if investment <= 0 {
		return 0, invalid("investment must be greater than 0, got %v", investment)
	}
	return ((actualReturn - investment) / investment) * 100, nil
}

// PartialReturn returns the amount representing targetPercentage percent of
// the investment, that is the amount an investor wants to recover.
//
// investment must be ≥ 0 and targetPercentage within [0, 100].
func PartialReturn(investment, targetPercentage float64) (float64, error) {
	if investment < 0 {
		return 0, invalid("investment must be ≥ 0, got %v", investment)
	}
	if targetPercentage < 0 || targetPercentage > 100 {
		return 0, invalid("target percentage must be between 0 and 100, got %v", targetPercentage)
	}
	return investment * (targetPercentage / 100), nil
}

// ReturnPercentage returns the percentage of the investment that desiredReturn
// represents.
//
//	percentage = desiredReturn / investment * 100
//
// investment must be strictly positive. The result can exceed 100.
func ReturnPercentage(investment, desiredReturn float64) (float64, error) {
	if investment <= 0 {
		return 0, invalid("investment must be greater than 0, got %v", investment)
	}
	return (desiredReturn / investment) * 100, nil
}
