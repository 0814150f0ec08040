package dto

import "encoding/json"

// StringOrList accepts either a JSON string or a JSON array of strings.
// The registration form posts skills as repeated fields, the admin page
// submits them as a single comma-separated string; both arrive here.
type StringOrList []string

// UnmarshalJSON implements json.Unmarshaler
func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*s = nil
		return nil
	}
	*s = []string{single}
	return nil
}

// StudentRequest carries the registration/update fields. All fields are
// required; presence is checked after trimming in the service so that
// whitespace-only values are rejected with the same message the form expects.
type StudentRequest struct {
	FirstName  string       `form:"first_name" json:"first_name"`
	LastName   string       `form:"last_name" json:"last_name"`
	USN        string       `form:"usn" json:"usn"`
	Gender     string       `form:"gender" json:"gender"`
	Email      string       `form:"email" json:"email"`
	Phone      string       `form:"phone" json:"phone"`
	Department string       `form:"department" json:"department"`
	Batch      string       `form:"batch" json:"batch"`
	Skills     StringOrList `form:"skills" json:"skills"`
	Domain     string       `form:"domain" json:"domain"`
}

// RegisterStudentResponse confirms a registration
type RegisterStudentResponse struct {
	Message    string  `json:"message"`
	StudentID  int64   `json:"studentId"`
	ResumePath *string `json:"resumePath"`
}

// SearchStudentsRequest carries the free-text search inputs
type SearchStudentsRequest struct {
	Skills string `form:"skills"`
	Domain string `form:"domain"`
}
