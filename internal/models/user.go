package models

import (
	"time"
)

// User is an employee record referenced by leave imports.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LeaveType is a configured absence category (e.g. "Annual Leave").
type LeaveType struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`
}
