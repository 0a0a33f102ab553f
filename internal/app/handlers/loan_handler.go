package handlers

import (
	"net/http"

	"loanlink/internal/pkg/log_messages"
	"loanlink/internal/pkg/logger"
	"loanlink/internal/pkg/models"
	storemodels "loanlink/internal/pkg/store/models"
	"loanlink/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loans     interfaces.LoanRepositoryInterface
	homeLimit int64
}

func NewLoanHandler(loans interfaces.LoanRepositoryInterface, homeLimit int64) *LoanHandler {
	return &LoanHandler{
		loans:     loans,
		homeLimit: homeLimit,
	}
}

func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var req models.CreateLoanRequest
	extra, err := bindJSONWithExtra(c, &req, storemodels.Loan{})
	if err != nil {
		respondBindingError(c, err)
		return
	}

	loan := &storemodels.Loan{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Amount:            req.Amount,
		InterestRate:      req.InterestRate,
		MaxLoanLimit:      req.MaxLoanLimit,
		Image:             req.Image,
		ShowOnHome:        req.ShowOnHome,
		RequiredDocuments: req.RequiredDocuments,
		EMIPlans:          req.EMIPlans,
		CreatedBy:         req.CreatedBy,
		Extra:             extra,
	}

	result, err := h.loans.CreateLoan(c.Request.Context(), loan)
	if err != nil {
		respondError(c, err, log_messages.ServerError)
		return
	}

	c.JSON(http.StatusOK, toInsertResult(result))
}

func (h *LoanHandler) GetHomeLoans(c *gin.Context) {
	loans, err := h.loans.GetHomeLoans(c.Request.Context(), h.homeLimit)
	if err != nil {
		logger.CtxError(c.Request.Context(), log_messages.ErrorFetchingLoans, err)
		respondError(c, err, log_messages.ServerError)
		return
	}

	c.JSON(http.StatusOK, nonNilLoans(loans))
}

func (h *LoanHandler) GetAllLoans(c *gin.Context) {
	loans, err := h.loans.GetAllLoans(c.Request.Context())
	if err != nil {
		logger.CtxError(c.Request.Context(), log_messages.ErrorFetchingLoans, err)
		respondError(c, err, log_messages.ServerError)
		return
	}

	c.JSON(http.StatusOK, nonNilLoans(loans))
}

// GetLoanDetails answers null when the id matches no loan.
func (h *LoanHandler) GetLoanDetails(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	loan, err := h.loans.GetLoanByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, log_messages.ServerError)
		return
	}

	if loan == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, loan)
}

func nonNilLoans(loans []storemodels.Loan) []storemodels.Loan {
	if loans == nil {
		return []storemodels.Loan{}
	}
	return loans
}
