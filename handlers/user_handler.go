package handlers

import (
	"favorites/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes sets up the User routes
func RegisterUserRoutes(router *gin.RouterGroup, userController *controllers.UserController, auth gin.HandlerFunc) {
	userGroup := router.Group("/users")
	{
		userGroup.GET("/profile", auth, userController.GetUserProfile)
	}
}
