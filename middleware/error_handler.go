package middleware

import (
	"errors"
	"favorites/services"
	"favorites/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware turns errors pushed with c.Error into the JSON error envelope
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var signUpErr *services.SignUpError
		if errors.As(err, &signUpErr) {
			utils.ErrorResponseWithData(c, signUpErr.StatusCode, signUpErr.Message, signUpErr.Fields)
			return
		}

		customErr := utils.AsCustomError(err)
		if customErr.StatusCode >= http.StatusInternalServerError {
			log.Printf("Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
	}
}
