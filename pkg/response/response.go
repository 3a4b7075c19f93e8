// Package response writes the uniform JSON envelope every endpoint returns.
package response

import (
	"videotube/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func JSON(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, Envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	})
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorEnvelope{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
	})
}

// AbortWithError writes the error envelope for err and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	statusCode := apperror.KindOf(err).StatusCode()
	c.AbortWithStatusJSON(statusCode, ErrorEnvelope{
		StatusCode: statusCode,
		Message:    apperror.PublicMessage(err),
		Success:    false,
	})
}
