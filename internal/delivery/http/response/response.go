package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform failure payload. Clients only ever get a plain
// message string, never driver or stack detail.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error sends the {"error": message} failure body with the given status.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}
