package route

import (
	"favorites/controllers"
	"favorites/handlers"
	"favorites/services"

	"github.com/gin-gonic/gin"
)

// Services is what the v1 routes need to serve requests
type Services struct {
	Places   *services.PlaceService
	Sessions *services.SessionService
	Users    *services.UserService
}

// RegisterRoutes initializes all routes. auth guards everything except sign-up and sign-in.
func RegisterRoutes(router *gin.Engine, svc Services, auth gin.HandlerFunc) {
	authHandler := controllers.NewAuthController(svc.Sessions)
	placeHandler := controllers.NewPlaceController(svc.Places)
	userHandler := controllers.NewUserController(svc.Users)

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterAuthRoutes(v1Routes, authHandler)
		handlers.RegisterPlaceRoutes(v1Routes, placeHandler, auth)
		handlers.RegisterUserRoutes(v1Routes, userHandler, auth)
	}
}
