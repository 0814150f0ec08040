package models

import "time"

// Company defines a placement listing based on the 'companies' table.
// Everything except the name is optional and stored as entered.
type Company struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Role         *string   `json:"role" db:"role"`
	Location     *string   `json:"location" db:"location"`
	Package      *string   `json:"package" db:"package"`
	ScheduleDate *string   `json:"schedule_date" db:"schedule_date"`
	Eligibility  *string   `json:"eligibility" db:"eligibility"`
	Notes        *string   `json:"notes" db:"notes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
