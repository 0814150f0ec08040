package models

import "time"

// Gender is the student gender enum stored in the 'students' table.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ValidGender reports whether g is one of the accepted enum values.
func ValidGender(g string) bool {
	switch Gender(g) {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Student defines the student registration record based on the 'students'
// table. JSON keys are snake_case because the registration and admin pages
// consume the rows in that shape.
type Student struct {
	ID         int64     `json:"id" db:"id"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	USN        string    `json:"usn" db:"usn"` // University Seat Number, institution-issued and immutable
	Gender     Gender    `json:"gender" db:"gender"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone" db:"phone"`
	Department string    `json:"department" db:"department"`
	Batch      string    `json:"batch" db:"batch"`
	Skills     string    `json:"skills" db:"skills"` // comma-separated free text
	Domain     string    `json:"domain" db:"domain"`
	ResumePath *string   `json:"resume_path" db:"resume_path"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
