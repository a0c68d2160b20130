package investo

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Formula describes a registered formula, so that it can be listed and
// evaluated by name.
type Formula struct {
	Name   string   // Name under which the formula is registered.
	Params []string // Params names, in call order.
	// Optional is the number of trailing Params that default to 0 when
	// omitted.
	Optional int

	eval func(args []float64) (float64, error)
}

// Eval evaluates the formula on args. Omitted optional arguments are 0.
func (f Formula) Eval(args ...float64) (float64, error) {
	required := len(f.Params) - f.Optional
	if len(args) < required || len(args) > len(f.Params) {
		if f.Optional == 0 {
			return 0, invalid("%s takes %d arguments, got %d", f.Name, len(f.Params), len(args))
		}
		return 0, invalid("%s takes %d to %d arguments, got %d", f.Name, required, len(f.Params), len(args))
	}
	full := make([]float64, len(f.Params))
	copy(full, args)
	return f.eval(full)
}

// String returns the formula signature, like "calculateProfit(saleProceeds, investment)".
func (f Formula) String() string {
	s := f.Name + "("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p
		if i >= len(f.Params)-f.Optional {
			s += "?"
		}
	}
	return s + ")"
}

// total lifts a formula that cannot fail.
func total(f func(a, b, c float64) float64) func([]float64) (float64, error) {
	return func(x []float64) (float64, error) { return f(x[0], x[1], x[2]), nil }
}

func binary(f func(a, b float64) (float64, error)) func([]float64) (float64, error) {
	return func(x []float64) (float64, error) { return f(x[0], x[1]) }
}

func ternary(f func(a, b, c float64) (float64, error)) func([]float64) (float64, error) {
	return func(x []float64) (float64, error) { return f(x[0], x[1], x[2]) }
}

var registry = map[string]Formula{}

func register(f Formula) {
	if _, exists := registry[f.Name]; exists {
		panic(fmt.Sprintf("formula %q registered twice", f.Name))
	}
	registry[f.Name] = f
}

func init() {
	register(Formula{Name: "calculateROI", Params: []string{"investment", "actualReturn"}, eval: binary(ROI)})
	register(Formula{Name: "calculatePartialReturn", Params: []string{"investment", "targetPercentage"}, eval: binary(PartialReturn)})
	register(Formula{Name: "calculateReturnPercentage", Params: []string{"investment", "desiredReturn"}, eval: binary(ReturnPercentage)})

	register(Formula{Name: "calculateInvestment", Params: []string{"amount", "pricePerAsset", "fee"}, Optional: 1, eval: ternary(Investment)})
	register(Formula{Name: "calculateAssetsFromInvestment", Params: []string{"investment", "pricePerAsset", "fee"}, Optional: 1, eval: ternary(AssetsFromInvestment)})
	register(Formula{Name: "calculatePricePerAsset", Params: []string{"investment", "amount", "fee"}, Optional: 1, eval: ternary(PricePerAsset)})
	register(Formula{Name: "calculateNetSaleProceeds", Params: []string{"amount", "price", "fee"}, Optional: 1, eval: ternary(NetSaleProceeds)})
	register(Formula{Name: "calculateProfit", Params: []string{"saleProceeds", "investment"}, eval: binary(Profit)})
	register(Formula{Name: "calculateRemainingInvestment", Params: []string{"initialInvestment", "withdrawnAmount"}, eval: binary(RemainingInvestment)})

	register(Formula{Name: "calcSimpleInterest", Params: []string{"principal", "rate", "years"}, eval: total(SimpleInterest)})
	register(Formula{Name: "calcSimpleProfit", Params: []string{"principal", "rate", "years"}, eval: total(SimpleProfit)})
}

// Lookup returns the formula registered under name.
func Lookup(name string) (Formula, bool) {
	f, ok := registry[name]
	return f, ok
}

// Formulas returns all registered formulas sorted by name.
func Formulas() iter.Seq[Formula] {
	names := slices.Sorted(maps.Keys(registry))
	return func(yield func(Formula) bool) {
		for _, name := range names {
			if !yield(registry[name]) {
				return
			}
		}
	}
}

// Evaluate looks up the formula called name and evaluates it on args.
func Evaluate(name string, args ...float64) (float64, error) {
	f, ok := Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownFormula, name)
	}
	return f.Eval(args...)
}
