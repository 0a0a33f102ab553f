package models

type CreateLoanRequest struct {
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Amount            float64  `json:"amount" binding:"gte=0"`
	InterestRate      float64  `json:"interestRate" binding:"gte=0"`
	MaxLoanLimit      float64  `json:"maxLoanLimit" binding:"gte=0"`
	Image             string   `json:"image"`
	ShowOnHome        bool     `json:"showOnHome"`
	RequiredDocuments []string `json:"requiredDocuments"`
	EMIPlans          []string `json:"emiPlans"`
	CreatedBy         string   `json:"createdBy"`
}
