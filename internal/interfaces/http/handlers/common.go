// Package handlers contains the gin HTTP handlers for the hsn-advisor API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/turtacn/hsn-advisor/pkg/errors"
)

// ErrorBody is the standard JSON error envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// writeError maps an error to the JSON envelope and the HTTP status derived
// from its error code.
func writeError(c *gin.Context, err error) {
	code := apperrors.GetCode(err)
	body := ErrorBody{Code: code.String(), Message: err.Error()}

	var ae *apperrors.AppError
	if errors.As(err, &ae) {
		body.Message = ae.Message
		body.Detail = ae.Detail
	}

	c.JSON(apperrors.HTTPStatusForCode(code), gin.H{"error": body})
}

// writeInvalidParam is the shortcut for malformed request bodies.
func writeInvalidParam(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": ErrorBody{
		Code:    apperrors.CodeInvalidParam.String(),
		Message: message,
	}})
}
