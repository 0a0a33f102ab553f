package models

import (
	"time"

	"loanlink/internal/pkg/consts"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Loan struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Category          string             `bson:"category,omitempty" json:"category,omitempty"`
	Amount            float64            `bson:"amount" json:"amount"`
	InterestRate      float64            `bson:"interestRate,omitempty" json:"interestRate,omitempty"`
	MaxLoanLimit      float64            `bson:"maxLoanLimit,omitempty" json:"maxLoanLimit,omitempty"`
	Image             string             `bson:"image" json:"image"`
	ShowOnHome        bool               `bson:"showOnHome" json:"showOnHome"`
	RequiredDocuments []string           `bson:"requiredDocuments,omitempty" json:"requiredDocuments,omitempty"`
	EMIPlans          []string           `bson:"emiPlans,omitempty" json:"emiPlans,omitempty"`
	CreatedBy         string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	Extra             bson.M             `bson:",inline" json:"-"`
}

// User timestamps are stored as ISO-8601 strings.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Role         string             `bson:"role" json:"role"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    string             `bson:"created_at" json:"created_at"`
	LastLoggedIn string             `bson:"last_loggedIn" json:"last_loggedIn"`
	Extra        bson.M             `bson:",inline" json:"-"`
}

type LoanApplication struct {
	ID                   primitive.ObjectID          `bson:"_id,omitempty" json:"_id"`
	UserEmail            string                      `bson:"userEmail" json:"userEmail"`
	LoanID               string                      `bson:"loanId" json:"loanId"`
	LoanTitle            string                      `bson:"loanTitle,omitempty" json:"loanTitle,omitempty"`
	InterestRate         float64                     `bson:"interestRate,omitempty" json:"interestRate,omitempty"`
	FirstName            string                      `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName             string                      `bson:"lastName,omitempty" json:"lastName,omitempty"`
	ContactNumber        string                      `bson:"contactNumber,omitempty" json:"contactNumber,omitempty"`
	NationalID           string                      `bson:"nationalId,omitempty" json:"nationalId,omitempty"`
	IncomeSource         string                      `bson:"incomeSource,omitempty" json:"incomeSource,omitempty"`
	MonthlyIncome        float64                     `bson:"monthlyIncome,omitempty" json:"monthlyIncome,omitempty"`
	LoanAmount           float64                     `bson:"loanAmount" json:"loanAmount"`
	Reason               string                      `bson:"reason,omitempty" json:"reason,omitempty"`
	Address              string                      `bson:"address,omitempty" json:"address,omitempty"`
	ExtraNotes           string                      `bson:"extraNotes,omitempty" json:"extraNotes,omitempty"`
	Status               consts.ApplicationStatus    `bson:"status" json:"status"`
	ApplicationFeeStatus consts.ApplicationFeeStatus `bson:"applicationFeeStatus" json:"applicationFeeStatus"`
	StripePaymentID      string                      `bson:"stripePaymentId,omitempty" json:"stripePaymentId,omitempty"`
	PaymentEmail         string                      `bson:"paymentEmail,omitempty" json:"paymentEmail,omitempty"`
	PaymentAmount        float64                     `bson:"paymentAmount,omitempty" json:"paymentAmount,omitempty"`
	PaidAt               *time.Time                  `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	CreatedAt            time.Time                   `bson:"createdAt" json:"createdAt"`
	Extra                bson.M                      `bson:",inline" json:"-"`
}

// Documents keep the members a client sent beyond the declared fields in Extra. They
// are stored inline and rendered back into the JSON body.

func (l Loan) MarshalJSON() ([]byte, error) {
	type plain Loan
	return marshalWithExtra(plain(l), l.Extra)
}

func (a LoanApplication) MarshalJSON() ([]byte, error) {
	type plain LoanApplication
	return marshalWithExtra(plain(a), a.Extra)
}

// PaymentDetails is the set of fields attached to a LoanApplication once its fee is paid.
type PaymentDetails struct {
	StripePaymentID string
	PaymentEmail    string
	PaymentAmount   float64
	PaidAt          time.Time
}
