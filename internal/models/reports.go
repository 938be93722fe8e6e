package models

import "github.com/shopspring/decimal"

// ReportSummary aggregates the transaction collection for the reports view.
type ReportSummary struct {
	TotalIncome  decimal.Decimal  `json:"total_income"`
	TotalExpense decimal.Decimal  `json:"total_expense"`
	Net          decimal.Decimal  `json:"net"`
	NetDisplay   string           `json:"net_display"`
	ByCategory   []CategoryAmount `json:"by_category"`
}

// CategoryAmount is expense spend grouped by category, largest first.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
