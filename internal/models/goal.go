package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Goal struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	Deadline string          `json:"deadline,omitempty"`
}

func NewGoal(name string, target, current decimal.Decimal, deadline string) Goal {
	return Goal{
		ID:       uuid.NewString(),
		Name:     name,
		Target:   target,
		Current:  current,
		Deadline: deadline,
	}
}
