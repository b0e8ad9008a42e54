package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope writes {"success": true, ...payload} with the given status.
func Envelope(c *gin.Context, status int, payload gin.H) {
	if status == 0 {
		status = http.StatusOK
	}
	body := gin.H{"success": true}
	for k, v := range payload {
		if k == "success" {
			continue
		}
		body[k] = v
	}
	c.JSON(status, body)
}

type APIError struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Error     interface{} `json:"error,omitempty"`
}

// Error builds a failure envelope carrying the request id.
func Error(ctx *gin.Context, status int, message string, err interface{}) APIError {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIError{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     err,
	}
}

// AbortWithError writes the failure envelope and stops the handler chain.
func AbortWithError(ctx *gin.Context, status int, message string, err interface{}) {
	resp := Error(ctx, status, message, err)
	ctx.AbortWithStatusJSON(resp.Status, resp)
}
