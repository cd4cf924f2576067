package utils

import "github.com/gin-gonic/gin"

// Response is the envelope every endpoint answers with
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Response{
		Status:  "error",
		Message: message,
	})
}

// ErrorResponseWithData is used when the client needs extra detail, e.g. which form fields to highlight.
func ErrorResponseWithData(c *gin.Context, statusCode int, message string, data interface{}) {
	c.AbortWithStatusJSON(statusCode, Response{
		Status:  "error",
		Message: message,
		Data:    data,
	})
}
