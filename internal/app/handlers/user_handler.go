package handlers

import (
	"net/http"

	"loanlink/internal/app/middleware"
	"loanlink/internal/pkg/log_messages"
	"loanlink/internal/pkg/logger"
	"loanlink/internal/pkg/models"
	storemodels "loanlink/internal/pkg/store/models"
	"loanlink/internal/service/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	users interfaces.UserRepositoryInterface
}

func NewUserHandler(users interfaces.UserRepositoryInterface) *UserHandler {
	return &UserHandler{users: users}
}

// UpsertUser records a login, creating the user on first sight.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req models.UpsertUserRequest
	extra, err := bindJSONWithExtra(c, &req, storemodels.User{})
	if err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.users.UpsertOnLogin(c.Request.Context(), &storemodels.User{
		Email: req.Email,
		Name:  req.Name,
		Image: req.Image,
		Role:  req.Role,
		Extra: extra,
	})
	if err != nil {
		respondError(c, err, log_messages.ServerError)
		return
	}

	c.JSON(http.StatusOK, toUpdateResult(result))
}

// GetRole reports the role of the caller identified by the verified token.
func (h *UserHandler) GetRole(c *gin.Context) {
	email := middleware.TokenEmailFromContext(c)
	if email == "" {
		c.JSON(http.StatusUnauthorized, models.MessageResponse{Message: log_messages.UnauthorizedAccess})
		return
	}

	role, err := h.users.GetRoleByEmail(c.Request.Context(), email)
	if err != nil {
		logger.CtxError(c.Request.Context(), log_messages.ErrorFetchingUser, err, zap.String("email", email))
		respondError(c, err, log_messages.ServerError)
		return
	}

	c.JSON(http.StatusOK, models.RoleResponse{Role: role})
}
