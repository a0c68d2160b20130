package investo

// Investment returns the total cost of buying amount assets at pricePerAsset,
// fee included.
//
//	total = amount * pricePerAsset + fee
func Investment(amount, pricePerAsset, fee float64) (float64, error) {
	if amount < 0 || pricePerAsset < 0 || fee < 0 {
		return 0, invalid("amount, price per asset and fee must be ≥ 0, got %v, %v, %v", amount, pricePerAsset, fee)
	}
	return amount*pricePerAsset + fee, nil
}

// AssetsFromInvestment returns how many assets can be bought with investment
// once the fee is paid.
//
//	assets = (investment - fee) / pricePerAsset
//
// When the fee eats the whole investment, no asset can be bought and 0 is
// returned.
func AssetsFromInvestment(investment, pricePerAsset, fee float64) (float64, error) {
	if investment < 0 || fee < 0 {
		return 0, invalid("investment and fee must be ≥ 0, got %v, %v", investment, fee)
	}
	if pricePerAsset <= 0 {
		return 0, invalid("price per asset must be greater than 0, got %v", pricePerAsset)
	}
	net := investment - fee
	if net < 0 {
		return 0, nil
	}
	return net / pricePerAsset, nil
}

// PricePerAsset returns the effective price paid for each of the amount assets
// received for investment, fee excluded.
//
//	price = (investment - fee) / amount
//
// It is 0 when the fee is larger than the investment.
func PricePerAsset(investment, amount, fee float64) (float64, error) {
	if investment < 0 || fee < 0 {
		return 0, invalid("investment and fee must be ≥ 0, got %v, %v", investment, fee)
	}
	if amount <= 0 {
		return 0, invalid("amount must be greater than 0, got %v", amount)
	}
	net := investment - fee
	if net < 0 {
		return 0, nil
	}
	return net / amount, nil
}

// NetSaleProceeds returns what is received when selling amount assets at
// price, after the fee.
//
//	proceeds = amount * price - fee
//
// A fee larger than the gross sale yields 0, never a negative amount.
func NetSaleProceeds(amount, price, fee float64) (float64, error) {
	if amount < 0 || price < 0 || fee < 0 {
		return 0, invalid("amount, price and fee must be ≥ 0, got %v, %v, %v", amount, price, fee)
	}
	net := amount*price - fee
	if net < 0 {
		return 0, nil
	}
	return net, nil
}

// Profit returns saleProceeds minus investment. A negative profit is a loss.
func Profit(saleProceeds, investment float64) (float64, error) {
	if saleProceeds < 0 || investment < 0 {
		return 0, invalid("sale proceeds and investment must be ≥ 0, got %v, %v", saleProceeds, investment)
	}
	return saleProceeds - investment, nil
}

// RemainingInvestment returns what is left of initialInvestment after a
// withdrawal. Withdrawing more than what was invested leaves 0.
func RemainingInvestment(initialInvestment, withdrawnAmount float64) (float64, error) {
	if initialInvestment < 0 || withdrawnAmount < 0 {
		return 0, invalid("initial investment and withdrawn amount must be ≥ 0, got %v, %v", initialInvestment, withdrawnAmount)
	}
	remaining := initialInvestment - withdrawnAmount
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}
