package controllers

import (
	"errors"
	"favorites/models"
	"favorites/services"
	"favorites/utils"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type PlaceController struct {
	PlaceService *services.PlaceService
}

func NewPlaceController(placeService *services.PlaceService) *PlaceController {
	return &PlaceController{
		PlaceService: placeService,
	}
}

func (p *PlaceController) GetAllPlaces(c *gin.Context) {
	places, err := p.PlaceService.ListPlaces(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Places fetched successfully", places)
}

func (p *PlaceController) GetPlaceByID(c *gin.Context) {
	placeID := c.Param("id")
	if placeID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	place, err := p.PlaceService.GetPlace(c.Request.Context(), placeID)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Place fetched successfully", place)
}

// CreatePlace takes a multipart form: name, description, address, rating and an optional image file
func (p *PlaceController) CreatePlace(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Name is required")
		return
	}

	rating := 0.0
	if raw := c.PostForm("rating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid rating")
			return
		}
		rating = parsed
	}

	place := models.Place{
		Name:        name,
		Description: c.PostForm("description"),
		Address:     c.PostForm("address"),
		Rating:      rating,
	}

	var image services.ImageSource
	fileHeader, err := c.FormFile("image")
	switch {
	case err == nil:
		image = services.FormImage{Header: fileHeader}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		image = nil
	default:
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid image upload")
		return
	}

	saved, err := p.PlaceService.CreatePlaceWithImage(c.Request.Context(), place, image)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Place added successfully", saved)
}

func (p *PlaceController) UpdateRating(c *gin.Context) {
	placeID := c.Param("id")

	var requestBody struct {
		Rating *float64 `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format or missing rating")
		return
	}

	place, err := p.PlaceService.UpdateRating(c.Request.Context(), placeID, *requestBody.Rating)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rating updated successfully", place)
}
