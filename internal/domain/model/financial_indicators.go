package model

import "fmt"

// FinancialIndicators holds the four declared percentages of an evaluation.
type FinancialIndicators struct {
	Sales         int `json:"sales" yaml:"sales"`
	Liquidity     int `json:"liquidity" yaml:"liquidity"`
	Profitability int `json:"profitability" yaml:"profitability"`
	Reputation    int `json:"reputation" yaml:"reputation"`
}

// Indicator is one labelled percentage.
type Indicator struct {
	Label string
	Value int
}

// NewFinancialIndicators validates every value is within [0,100].
func NewFinancialIndicators(sales, liquidity, profitability, reputation int) (FinancialIndicators, error) {
	fi := FinancialIndicators{
		Sales:         sales,
		Liquidity:     liquidity,
		Profitability: profitability,
		Reputation:    reputation,
	}
	if err := fi.Validate(); err != nil {
		return FinancialIndicators{}, err
	}
	return fi, nil
}

func (f FinancialIndicators) Validate() error {
	for _, ind := range f.Ordered() {
		if ind.Value < 0 || ind.Value > 100 {
			return fmt.Errorf("%w: %s = %d, want 0..100", ErrIndicatorOutOfRange, ind.Label, ind.Value)
		}
	}
	return nil
}

// Ordered returns the indicators in report order.
func (f FinancialIndicators) Ordered() []Indicator {
	return []Indicator{
		{Label: "Sales", Value: f.Sales},
		{Label: "Liquidity", Value: f.Liquidity},
		{Label: "Profitability", Value: f.Profitability},
		{Label: "Digital reputation", Value: f.Reputation},
	}
}
