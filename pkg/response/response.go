package response

import "github.com/gin-gonic/gin"

// ErrorBody is the wire shape of every error response. Message is human
// readable; Details carries per-field validation messages when present.
// Internal identifiers and stack traces never appear here.
type ErrorBody struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Err writes an error response with the given status and message.
func Err(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Message: message})
}

// ErrDetails writes an error response carrying field-level details.
func ErrDetails(c *gin.Context, status int, message string, details map[string]string) {
	c.JSON(status, ErrorBody{Message: message, Details: details})
}

// AbortErr aborts the request chain with an error response; for middleware.
func AbortErr(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message})
}
