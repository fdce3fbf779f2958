package handlers

import "github.com/gin-gonic/gin"

// APIResponse is the uniform success envelope:
// {statusCode, success, message, data}.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

// Respond writes the envelope with the given status.
func Respond(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		StatusCode: statusCode,
		Success:    statusCode >= 200 && statusCode < 400,
		Message:    message,
		Data:       data,
	})
}
