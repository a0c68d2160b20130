package exact

import (
	"errors"
	"testing"

	"github.com/etnz/investo"
	"github.com/etnz/investo/date"
)

func TestROI(t *testing.T) {
	tests := []struct {
		name                     string
		investment, actualReturn Money
		want                     Percent
		wantErr                  error
	}{
		{name: "gain", investment: EUR(10000), actualReturn: EUR(13000), want: P(30)},
		{name: "loss", investment: EUR(10000), actualReturn: EUR(8000), want: P(-20)},
		{name: "third", investment: EUR(3), actualReturn: EUR(4), want: P(33.333333)},
		{name: "weak return", investment: EUR(10000), actualReturn: NO(10500), want: P(5)},
		{name: "zero investment", investment: EUR(0), actualReturn: EUR(1), wantErr: investo.ErrInvalidArgument},
		{name: "mixed currencies", investment: EUR(100), actualReturn: USD(120), wantErr: ErrCurrencyMismatch},
		{name: "unknown currency", investment: M(100, "ABC"), actualReturn: NO(120), wantErr: investo.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ROI(tt.investment, tt.actualReturn)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ROI() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ROI() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ROI() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPartialReturn(t *testing.T) {
	got, err := PartialReturn(EUR(10000), P(60))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(EUR(6000)) {
		t.Errorf("PartialReturn(EUR(10000), 60%%) = %v, want EUR(6000)", got)
	}
	got, err = PartialReturn(USD(300), P(12.5))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(USD(37.5)) {
		t.Errorf("PartialReturn(USD(300), 12.5%%) = %v, want USD(37.5)", got)
	}
	for _, target := range []Percent{P(-10), P(120), P(100.01)} {
		if _, err := PartialReturn(EUR(10000), target); !errors.Is(err, investo.ErrInvalidArgument) {
			t.Errorf("PartialReturn(EUR(10000), %v) error = %v, want ErrInvalidArgument", target, err)
		}
	}
	if _, err := PartialReturn(EUR(-1), P(50)); !errors.Is(err, investo.ErrInvalidArgument) {
		t.Errorf("PartialReturn(EUR(-1), 50%%) error = %v, want ErrInvalidArgument", err)
	}
}

func TestReturnPercentage(t *testing.T) {
	got, err := ReturnPercentage(EUR(10000), EUR(12000))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(P(120)) {
		t.Errorf("ReturnPercentage() = %v, want 120%%", got)
	}
	if _, err := ReturnPercentage(EUR(0), EUR(5000)); !errors.Is(err, investo.ErrInvalidArgument) {
		t.Errorf("ReturnPercentage(0, 5000) error = %v, want ErrInvalidArgument", err)
	}
}

func TestInvestment(t *testing.T) {
	got, err := Investment(Q(10), USD(100), USD(5))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(USD(1005)) {
		t.Errorf("Investment() = %v, want $1,005.00", got)
	}

	got, err = Investment(Q(10), USD(100), Money{})
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(USD(1000)) {
		t.Errorf("Investment() without fee = %v, want $1,000.00", got)
	}

	if _, err := Investment(Q(1), USD(100), EUR(5)); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Investment() mixing currencies error = %v, want ErrCurrencyMismatch", err)
	}
	for _, args := range []struct {
		q    Quantity
		p, f Money
	}{
		{Q(-1), USD(100), USD(0)},
		{Q(1), USD(-100), USD(0)},
		{Q(1), USD(100), USD(-1)},
	} {
		if _, err := Investment(args.q, args.p, args.f); !errors.Is(err, investo.ErrInvalidArgument) {
			t.Errorf("Investment(%v, %v, %v) error = %v, want ErrInvalidArgument", args.q, args.p, args.f, err)
		}
	}
}

func TestAssetsFromInvestment(t *testing.T) {
	tests := []struct {
		name                   string
		investment, price, fee Money
		want                   Quantity
		wantErr                bool
	}{
		{name: "with fee", investment: EUR(1000), price: EUR(100), fee: EUR(50), want: Q(9.5)},
		{name: "fee exceeds investment", investment: EUR(100), price: EUR(10), fee: EUR(150), want: Q(0)},
		{name: "exact thirds", investment: EUR(0.3), price: EUR(0.1), want: Q(3)},
		{name: "zero price", investment: EUR(1000), price: EUR(0), wantErr: true},
		{name: "negative investment", investment: EUR(-1000), price: EUR(100), wantErr: true},
		{name: "negative fee", investment: EUR(1000), price: EUR(100), fee: EUR(-5), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AssetsFromInvestment(tt.investment, tt.price, tt.fee)
			if tt.wantErr {
				if !errors.Is(err, investo.ErrInvalidArgument) {
					t.Fatalf("AssetsFromInvestment() error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AssetsFromInvestment() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("AssetsFromInvestment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPricePerAsset(t *testing.T) {
	got, err := PricePerAsset(EUR(1050), Q(10), EUR(50))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(EUR(100)) {
		t.Errorf("PricePerAsset() = %v, want EUR(100)", got)
	}

	got, err = PricePerAsset(EUR(50), Q(10), EUR(100))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(EUR(0)) {
		t.Errorf("PricePerAsset() = %v, want EUR(0)", got)
	}

	if _, err := PricePerAsset(EUR(1000), Q(0), Money{}); !errors.Is(err, investo.ErrInvalidArgument) {
		t.Errorf("PricePerAsset() with no asset error = %v, want ErrInvalidArgument", err)
	}
}

func TestPricePerAsset_KeepsDigits(t *testing.T) {
	price, err := PricePerAsset(USD(100), Q(3), Money{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := price.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"currency":"USD","amount":"33.3333333333333333"}`; string(b) != want {
		t.Errorf("MarshalJSON() = %s, want %s", b, want)
	}
}

func TestNetSaleProceeds(t *testing.T) {
	tests := []struct {
		name       string
		amount     Quantity
		price, fee Money
		want       Money
	}{
		{name: "with fee", amount: Q(10), price: EUR(50), fee: EUR(20), want: EUR(480)},
		{name: "without fee", amount: Q(10), price: EUR(50), want: EUR(500)},
		{name: "fee exceeds gross", amount: Q(1), price: EUR(10), fee: EUR(15), want: EUR(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NetSaleProceeds(tt.amount, tt.price, tt.fee)
			if err != nil {
				t.Fatalf("NetSaleProceeds() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NetSaleProceeds() = %v, want %v", got, tt.want)
			}
		})
	}
	if _, err := NetSaleProceeds(Q(1), EUR(50), EUR(-10)); !errors.Is(err, investo.ErrInvalidArgument) {
		t.Errorf("NetSaleProceeds() with negative fee error = %v, want ErrInvalidArgument", err)
	}
}

func TestProfit(t *testing.T) {
	got, err := Profit(EUR(800), EUR(1000))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(EUR(-200)) {
		t.Errorf("Profit() = %v, want EUR(-200)", got)
	}
	if _, err := Profit(EUR(-100), EUR(100)); !errors.Is(err, investo.ErrInvalidArgument) {
		t.Errorf("Profit() with negative proceeds error = %v, want ErrInvalidArgument", err)
	}
}

func TestRemainingInvestment(t *testing.T) {
	got, err := RemainingInvestment(EUR(3000), EUR(5000))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(EUR(0)) {
		t.Errorf("RemainingInvestment() = %v, want EUR(0)", got)
	}
	got, err = RemainingInvestment(EUR(10000), EUR(4000))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(EUR(6000)) {
		t.Errorf("RemainingInvestment() = %v, want EUR(6000)", got)
	}
	if _, err := RemainingInvestment(EUR(1000), USD(500)); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("RemainingInvestment() mixing currencies error = %v, want ErrCurrencyMismatch", err)
	}
}

func TestSimpleInterest(t *testing.T) {
	if got := SimpleInterest(EUR(1000), D("0.1"), D("2")); !got.Equal(EUR(1200)) {
		t.Errorf("SimpleInterest() = %v, want EUR(1200)", got)
	}
	if got := SimpleProfit(EUR(1000), D("-0.1"), D("1")); !got.Equal(EUR(-100)) {
		t.Errorf("SimpleProfit() = %v, want EUR(-100)", got)
	}

	// 73 days are exactly a fifth of a year.
	r := date.NewRange(date.New(2023, 1, 1), date.New(2023, 3, 15))
	if got := SimpleProfitOver(EUR(1000), D("0.05"), r); !got.Equal(EUR(10)) {
		t.Errorf("SimpleProfitOver() = %v, want EUR(10)", got)
	}
	if got := SimpleInterestOver(EUR(1000), D("0.05"), r); !got.Equal(EUR(1010)) {
		t.Errorf("SimpleInterestOver() = %v, want EUR(1010)", got)
	}
}

// TestAgreesWithFloat checks that exact formulas give the float results on
// values that are exact in both.
func TestAgreesWithFloat(t *testing.T) {
	roi, _ := investo.ROI(10000, 13000)
	eroi, _ := ROI(EUR(10000), EUR(13000))
	if !eroi.Equal(P(roi)) {
		t.Errorf("ROI: exact %v, float %v", eroi, roi)
	}

	assets, _ := investo.AssetsFromInvestment(1000, 100, 50)
	eassets, _ := AssetsFromInvestment(EUR(1000), EUR(100), EUR(50))
	if !eassets.Equal(Q(assets)) {
		t.Errorf("AssetsFromInvestment: exact %v, float %v", eassets, assets)
	}

	proceeds, _ := investo.NetSaleProceeds(1, 10, 15)
	eproceeds, _ := NetSaleProceeds(Q(1), EUR(10), EUR(15))
	if !eproceeds.Equal(EUR(proceeds)) {
		t.Errorf("NetSaleProceeds: exact %v, float %v", eproceeds, proceeds)
	}
}
