package exact

// Investment returns the cost of buying amount assets at pricePerAsset, fee
// included. Use the zero Money for no fee.
func Investment(amount Quantity, pricePerAsset, fee Money) (Money, error) {
	if _, err := common(pricePerAsset, fee); err != nil {
		return Money{}, err
	}
	if amount.IsNegative() || pricePerAsset.IsNegative() || fee.IsNegative() {
		return Money{}, invalid("amount, price per asset and fee must be ≥ 0, got %s, %s, %s", amount, pricePerAsset.value, fee.value)
	}
	return pricePerAsset.Mul(amount).Add(fee), nil
}

// AssetsFromInvestment returns how many assets investment buys at
// pricePerAsset once the fee is paid, 0 if the fee exceeds the investment.
func AssetsFromInvestment(investment, pricePerAsset, fee Money) (Quantity, error) {
	if _, err := common(investment, pricePerAsset, fee); err != nil {
		return Quantity{}, err
	}
	if investment.IsNegative() || fee.IsNegative() {
		return Quantity{}, invalid("investment and fee must be ≥ 0, got %s, %s", investment.value, fee.value)
	}
	if !pricePerAsset.IsPositive() {
		return Quantity{}, invalid("price per asset must be greater than 0, got %s", pricePerAsset.value)
	}
	net := investment.Sub(fee)
	if net.IsNegative() {
		return Quantity{}, nil
	}
	return net.DivPrice(pricePerAsset), nil
}

// PricePerAsset returns the price effectively paid for each of the amount
// assets, fee excluded, 0 if the fee exceeds the investment.
//
// The price keeps all its digits when marshalled, unlike other amounts.
func PricePerAsset(investment Money, amount Quantity, fee Money) (Money, error) {
	c, err := common(investment, fee)
	if err != nil {
		return Money{}, err
	}
	if investment.IsNegative() || fee.IsNegative() {
		return Money{}, invalid("investment and fee must be ≥ 0, got %s, %s", investment.value, fee.value)
	}
	if !amount.IsPositive() {
		return Money{}, invalid("amount must be greater than 0, got %s", amount)
	}
	net := investment.Sub(fee)
	if net.IsNegative() {
		return zero(c), nil
	}
	return net.Div(amount).fullDigits(), nil
}

// NetSaleProceeds returns what selling amount assets at price yields after
// the fee. It is floored at 0.
func NetSaleProceeds(amount Quantity, price, fee Money) (Money, error) {
	c, err := common(price, fee)
	if err != nil {
		return Money{}, err
	}
	if amount.IsNegative() || price.IsNegative() || fee.IsNegative() {
		return Money{}, invalid("amount, price and fee must be ≥ 0, got %s, %s, %s", amount, price.value, fee.value)
	}
	net := price.Mul(amount).Sub(fee)
	if net.IsNegative() {
		return zero(c), nil
	}
	return net, nil
}

// Profit returns saleProceeds minus investment, negative for a loss.
func Profit(saleProceeds, investment Money) (Money, error) {
	if _, err := common(saleProceeds, investment); err != nil {
		return Money{}, err
	}
	if saleProceeds.IsNegative() || investment.IsNegative() {
		return Money{}, invalid("sale proceeds and investment must be ≥ 0, got %s, %s", saleProceeds.value, investment.value)
	}
	return saleProceeds.Sub(investment), nil
}

// RemainingInvestment returns what is left of initialInvestment after a
// withdrawal, floored at 0.
func RemainingInvestment(initialInvestment, withdrawnAmount Money) (Money, error) {
	c, err := common(initialInvestment, withdrawnAmount)
	if err != nil {
		return Money{}, err
	}
	if initialInvestment.IsNegative() || withdrawnAmount.IsNegative() {
		return Money{}, invalid("initial investment and withdrawn amount must be ≥ 0, got %s, %s", initialInvestment.value, withdrawnAmount.value)
	}
	remaining := initialInvestment.Sub(withdrawnAmount)
	if remaining.IsNegative() {
		return zero(c), nil
	}
	return remaining, nil
}
