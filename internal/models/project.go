package models

import (
	"time"
)

// Project is referenced by milestone imports.
type Project struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Milestone is a named project deadline.
type Milestone struct {
	ID          string    `json:"id" db:"id"`
	ProjectID   string    `json:"project_id" db:"project_id"`
	Name        string    `json:"name" db:"name"`
	DueDate     time.Time `json:"due_date" db:"due_date"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
