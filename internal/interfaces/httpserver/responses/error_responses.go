package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jan-server/services/application-settings-api/internal/utils/platformerrors"
)

// ErrorResponse represents an error response with platform error details
type ErrorResponse struct {
	Code          string `json:"code" example:"3f1f0b8e-7d1c-4c6a-9b52-6f1b3a1d2e90"`
	Error         string `json:"error" example:"invalid request body"`
	Message       string `json:"message,omitempty" example:"invalid request body"`
	ErrorInstance error  `json:"-"`
	RequestID     string `json:"request_id,omitempty" example:"8d4c2f7a-0a51-4a8e-9d1f-4c7d3f2a9b10"`
}

// HandleError handles domain errors and returns appropriate HTTP responses
func HandleError(reqCtx *gin.Context, err error, message string) {
	var domainErr *platformerrors.PlatformError
	if errors.As(err, &domainErr) {
		errorMessage := domainErr.Message
		if errorMessage == "" {
			errorMessage = message
		}

		_ = reqCtx.Error(domainErr)
		reqCtx.AbortWithStatusJSON(platformerrors.ErrorTypeToHTTPStatus(domainErr.Type), ErrorResponse{
			Code:          domainErr.UUID,
			Error:         errorMessage,
			Message:       errorMessage,
			ErrorInstance: domainErr,
			RequestID:     domainErr.RequestID,
		})
		return
	}

	if err != nil {
		_ = reqCtx.Error(err)
	}
	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:         message,
		Message:       message,
		ErrorInstance: err,
	})
}

// HandleNewError creates a new typed error at the route layer and handles it
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string, uuid string) {
	err := platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerRoute, errorType, message, nil, uuid)
	HandleError(reqCtx, err, message)
}

// HandleValidationError reports a request that failed boundary validation.
func HandleValidationError(reqCtx *gin.Context, cause error, message string, uuid string) {
	err := platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerRoute, platformerrors.ErrorTypeValidation, message, cause, uuid)
	HandleError(reqCtx, err, message)
}
