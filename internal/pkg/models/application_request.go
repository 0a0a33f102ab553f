package models

type CreateApplicationRequest struct {
	UserEmail     string  `json:"userEmail" binding:"required,email"`
	LoanID        string  `json:"loanId" binding:"required"`
	LoanTitle     string  `json:"loanTitle"`
	InterestRate  float64 `json:"interestRate" binding:"gte=0"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	ContactNumber string  `json:"contactNumber"`
	NationalID    string  `json:"nationalId"`
	IncomeSource  string  `json:"incomeSource"`
	MonthlyIncome float64 `json:"monthlyIncome" binding:"gte=0"`
	LoanAmount    float64 `json:"loanAmount" binding:"gte=0"`
	Reason        string  `json:"reason"`
	Address       string  `json:"address"`
	ExtraNotes    string  `json:"extraNotes"`
}

type CreateApplicationResponse struct {
	Result  InsertResult `json:"result"`
	Success bool         `json:"success"`
}
