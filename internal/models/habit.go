package models

import "github.com/google/uuid"

type Habit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Completed bool   `json:"completed"`
	// Streak is persisted and shown in the UI but no rule increments it yet.
	Streak int `json:"streak"`
}

func NewHabit(name, icon string) Habit {
	return Habit{
		ID:   uuid.NewString(),
		Name: name,
		Icon: icon,
	}
}
