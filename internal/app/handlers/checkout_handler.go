package handlers

import (
	"net/http"

	"loanlink/internal/pkg/apperrors"
	"loanlink/internal/pkg/log_messages"
	"loanlink/internal/pkg/models"
	"loanlink/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout interfaces.CheckoutServiceInterface
}

func NewCheckoutHandler(checkout interfaces.CheckoutServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req models.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	res, err := h.checkout.CreateSession(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, log_messages.ServerError)
		return
	}

	c.JSON(http.StatusOK, res)
}

// PaymentSuccess confirms the session named by the session_id query parameter.
func (h *CheckoutHandler) PaymentSuccess(c *gin.Context) {
	confirmation, err := h.checkout.ResolveSession(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		if confirmation == nil {
			confirmation = &models.PaymentConfirmation{
				Message: apperrors.Message(err, log_messages.ServerError),
			}
		}
		c.JSON(apperrors.HTTPStatus(err), confirmation)
		return
	}

	c.JSON(http.StatusOK, confirmation)
}
