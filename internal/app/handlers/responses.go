package handlers

import (
	"errors"
	"net/http"

	"loanlink/internal/pkg/apperrors"
	"loanlink/internal/pkg/log_messages"
	"loanlink/internal/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// parseObjectID reads a hex id path parameter, answering 400 when it is malformed.
func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{
			Message: log_messages.ErrorInvalidDocumentID,
			Err:     err.Error(),
		})
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondBindingError renders a failed bind as 400 with one entry per field.
func respondBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
			Message: log_messages.ErrorInvalidRequestPayload,
			Fields:  fields,
		})
		return
	}

	c.JSON(http.StatusBadRequest, models.MessageResponse{
		Message: log_messages.ErrorInvalidRequestPayload,
		Err:     err.Error(),
	})
}

func respondError(c *gin.Context, err error, fallback string) {
	c.JSON(apperrors.HTTPStatus(err), models.MessageResponse{
		Message: apperrors.Message(err, fallback),
	})
}

// Writes use the default acknowledged write concern.

func toInsertResult(r *mongo.InsertOneResult) models.InsertResult {
	return models.InsertResult{Acknowledged: true, InsertedID: r.InsertedID}
}

func toUpdateResult(r *mongo.UpdateResult) models.UpdateResult {
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
		UpsertedID:    r.UpsertedID,
	}
}

func toDeleteResult(r *mongo.DeleteResult) models.DeleteResult {
	return models.DeleteResult{Acknowledged: true, DeletedCount: r.DeletedCount}
}
