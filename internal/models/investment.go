package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentCategories is the fixed set of investment buckets.
var InvestmentCategories = []string{
	"Renda Fixa",
	"Cripto",
	"Ações",
	"Negócios",
	"FIIs",
}

// ValidInvestmentCategory reports whether c is one of the fixed buckets.
func ValidInvestmentCategory(c string) bool {
	for _, known := range InvestmentCategories {
		if c == known {
			return true
		}
	}
	return false
}

type Investment struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	// Performance is a percentage, accepted on the record but never
	// recomputed after creation.
	Performance float64 `json:"performance"`
}

func NewInvestment(name string, amount decimal.Decimal, category string) Investment {
	return Investment{
		ID:       uuid.NewString(),
		Name:     name,
		Amount:   amount,
		Category: category,
	}
}
