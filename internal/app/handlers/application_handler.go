package handlers

import (
	"net/http"

	"loanlink/internal/pkg/log_messages"
	"loanlink/internal/pkg/logger"
	"loanlink/internal/pkg/models"
	storemodels "loanlink/internal/pkg/store/models"
	"loanlink/internal/service/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	applications interfaces.ApplicationRepositoryInterface
}

func NewApplicationHandler(applications interfaces.ApplicationRepositoryInterface) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req models.CreateApplicationRequest
	extra, err := bindJSONWithExtra(c, &req, storemodels.LoanApplication{})
	if err != nil {
		respondBindingError(c, err)
		return
	}

	application := &storemodels.LoanApplication{
		UserEmail:     req.UserEmail,
		LoanID:        req.LoanID,
		LoanTitle:     req.LoanTitle,
		InterestRate:  req.InterestRate,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		NationalID:    req.NationalID,
		IncomeSource:  req.IncomeSource,
		MonthlyIncome: req.MonthlyIncome,
		LoanAmount:    req.LoanAmount,
		Reason:        req.Reason,
		Address:       req.Address,
		ExtraNotes:    req.ExtraNotes,
		Extra:         extra,
	}

	result, err := h.applications.CreateApplication(c.Request.Context(), application)
	if err != nil {
		respondError(c, err, log_messages.ServerError)
		return
	}

	c.JSON(http.StatusOK, models.CreateApplicationResponse{
		Result:  toInsertResult(result),
		Success: true,
	})
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	email := c.Param("email")

	applications, err := h.applications.GetApplicationsByEmail(c.Request.Context(), email)
	if err != nil {
		logger.CtxError(c.Request.Context(), log_messages.ErrorFetchingApplications, err, zap.String("email", email))
		respondError(c, err, log_messages.ServerError)
		return
	}

	if applications == nil {
		applications = []storemodels.LoanApplication{}
	}
	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	result, err := h.applications.DeleteApplication(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, log_messages.ServerError)
		return
	}

	c.JSON(http.StatusOK, toDeleteResult(result))
}
