package middleware

import (
	"strings"

	"loanlink/internal/pkg/apperrors"
	"loanlink/internal/pkg/consts"
	"loanlink/internal/pkg/log_messages"
	"loanlink/internal/pkg/logger"
	"loanlink/internal/pkg/models"
	"loanlink/internal/service/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VerifyToken checks the bearer token and stores the verified email in the gin context.
func VerifyToken(verifier interfaces.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c, apperrors.NewUnauthorized(log_messages.UnauthorizedAccess, nil))
			return
		}

		ctx := c.Request.Context()
		email, err := verifier.VerifyToken(ctx, token)
		if err != nil {
			logger.CtxWarn(ctx, log_messages.ErrorTokenVerification, zap.Error(err))
			abortUnauthorized(c, apperrors.NewUnauthorized(log_messages.UnauthorizedAccess, err))
			return
		}

		c.Set(consts.TokenEmailKey, email)
		c.Next()
	}
}

// abortUnauthorized writes appErr with the verifier's reason, if any, as the diagnostic.
func abortUnauthorized(c *gin.Context, appErr *apperrors.AppError) {
	resp := models.MessageResponse{Message: appErr.Message}
	if appErr.Err != nil {
		resp.Err = appErr.Err.Error()
	}
	c.AbortWithStatusJSON(apperrors.HTTPStatus(appErr), resp)
}

// TokenEmailFromContext fetches the email stored by VerifyToken.
func TokenEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(consts.TokenEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}

// bearerToken returns the second space separated part of the header.
func bearerToken(header string) string {
	parts := strings.Split(strings.TrimSpace(header), " ")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
