package utils

import "github.com/gin-gonic/gin"

// ErrorResponse is the failure envelope every endpoint shares: an error
// string with a 4xx/5xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{Error: err.Error()})
}
