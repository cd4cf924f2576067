package handlers

import (
	"favorites/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPlaceRoutes(router *gin.RouterGroup, placeController *controllers.PlaceController, auth gin.HandlerFunc) {
	placeGroup := router.Group("/places")
	placeGroup.Use(auth)
	{
		placeGroup.GET("", placeController.GetAllPlaces)
		placeGroup.POST("", placeController.CreatePlace)
		placeGroup.GET("/:id", placeController.GetPlaceByID)
		placeGroup.PATCH("/:id/rating", placeController.UpdateRating)
	}
}
