package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind is the direction of a transaction.
type TransactionKind string

const (
	KindExpense TransactionKind = "expense"
	KindIncome  TransactionKind = "income"
)

// Categories is the fixed set of transaction categories the app understands.
// The advisor prompt and form validation both draw from this list.
var Categories = []string{
	"Alimentação",
	"Transporte",
	"Educação",
	"Lazer",
	"Saúde",
	"Investimento",
	"Outros",
	"Renda",
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Kind        TransactionKind `json:"kind"`
}

// NewTransaction builds a transaction dated now with a fresh id.
func NewTransaction(amount decimal.Decimal, description, category string, kind TransactionKind) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        time.Now(),
		Kind:        kind,
	}
}
