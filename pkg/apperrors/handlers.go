package apperrors

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an error as JSON with the mapped HTTP status.
// Unknown errors are wrapped so internal details never reach clients.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = New(CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
		log.Printf("unhandled error: %v", err)
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("server error: %v", err)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleValidationError converts binding/validation failures into the
// standard envelope.
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, ValidationError(err.Error()))
}
