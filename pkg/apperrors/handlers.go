package apperrors

import (
	"net/http"

	"rentify_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope:
// {statusCode, success:false, message, details}.
type ErrorResponse struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details"`
}

// HandleError funnels every error path into the uniform envelope. Recognized
// AppErrors keep their status and message; anything else is logged server-side
// and collapsed to a bare 500 so internals never leak to clients.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		logger.FromContext(c.Request.Context()).Error("unhandled error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
		)
		appErr = InternalError(err)
	}

	if appErr.StatusCode >= http.StatusInternalServerError && appErr.Err != nil {
		logger.FromContext(c.Request.Context()).Error("server error",
			"error", appErr.Err.Error(),
			"path", c.Request.URL.Path,
		)
	}

	c.AbortWithStatusJSON(appErr.StatusCode, ErrorResponse{
		StatusCode: appErr.StatusCode,
		Success:    false,
		Message:    appErr.Message,
		Details:    appErr.Details,
	})
}

// AsAppError tries to unwrap err into an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
