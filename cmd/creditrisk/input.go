package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pymecredit/creditrisk/internal/domain/model"
)

// evaluationInput is the YAML document accepted by --input.
//
//	company:
//	  name: Acme
//	  tax_id: "20123456789"
//	  industry: Retail
//	  social_media_url: https://instagram.com/acme
//	indicators:
//	  sales: 85
//	  liquidity: 68
//	  profitability: 71
//	  reputation: 79
//	documents:
//	  - statements/2025.pdf
type evaluationInput struct {
	Company    model.CompanyProfile `yaml:"company"`
	Indicators indicatorsInput      `yaml:"indicators"`
	Documents  []string             `yaml:"documents"`
}

type indicatorsInput struct {
	Sales         int `yaml:"sales"`
	Liquidity     int `yaml:"liquidity"`
	Profitability int `yaml:"profitability"`
	Reputation    int `yaml:"reputation"`
}

func readInput(path string) (evaluationInput, error) {
	var in evaluationInput
	raw, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("read input: %w", err)
	}
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return in, fmt.Errorf("parse input %s: %w", path, err)
	}
	return in, nil
}
