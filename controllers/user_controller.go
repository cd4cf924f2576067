package controllers

import (
	"favorites/middleware"
	"favorites/services"
	"favorites/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		UserService: userService,
	}
}

// controller profile

func (h *UserController) GetUserProfile(ctx *gin.Context) {
	email := ctx.GetString(middleware.ContextEmail)
	if email == "" {
		utils.ErrorResponse(ctx, http.StatusUnauthorized, "Email is required")
		return
	}

	profile, err := h.UserService.GetProfileByEmail(ctx.Request.Context(), email)
	if err != nil {
		ctx.Error(err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "success fetch User profile", profile)
}
