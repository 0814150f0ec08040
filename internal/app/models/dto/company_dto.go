package dto

// CompanyRequest is the company listing payload. Only the name is required;
// empty optional fields are stored as NULL.
type CompanyRequest struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Location     string `json:"location"`
	Package      string `json:"package"`
	ScheduleDate string `json:"schedule_date"`
	Eligibility  string `json:"eligibility"`
	Notes        string `json:"notes"`
}

// CreateCompanyResponse confirms a saved listing
type CreateCompanyResponse struct {
	Message   string `json:"message"`
	CompanyID int64  `json:"companyId"`
}
