package services

import (
	"context"
	"errors"
	"favorites/models"
	"favorites/utils"
	"log"
	"net/http"
	"strings"
)

type PlaceService struct {
	Store PlaceStore
	Media *MediaService
}

// NewPlaceService wires the places collection and the image uploader together
func NewPlaceService(store PlaceStore, media *MediaService) *PlaceService {
	return &PlaceService{
		Store: store,
		Media: media,
	}
}

func validatePlace(place *models.Place) error {
	if strings.TrimSpace(place.Name) == "" {
		return utils.NewCustomError(http.StatusBadRequest, "Name is required")
	}
	if !utils.IsValidRating(place.Rating) {
		return utils.NewCustomError(http.StatusBadRequest, "Rating must be between 0 and 5")
	}
	return nil
}

// SavePlace adds the place to the places collection and returns it with its new ID
func (s *PlaceService) SavePlace(ctx context.Context, place models.Place) (*models.Place, error) {
	if err := validatePlace(&place); err != nil {
		return nil, err
	}

	id, err := s.Store.Add(ctx, &place)
	if err != nil {
		log.Printf("Error adding document: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to save place")
	}
	place.ID = id

	log.Printf("Place document added with ID: %s", id)
	return &place, nil
}

// ListPlaces returns the whole places collection in whatever order the store yields
func (s *PlaceService) ListPlaces(ctx context.Context) ([]models.Place, error) {
	places, err := s.Store.All(ctx)
	if err != nil {
		log.Printf("Error getting documents: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch places")
	}
	if places == nil {
		places = []models.Place{}
	}
	return places, nil
}

func (s *PlaceService) GetPlace(ctx context.Context, id string) (*models.Place, error) {
	place, err := s.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, utils.NewCustomError(http.StatusNotFound, "Place not found")
		}
		log.Printf("Error fetching place %s: %v", id, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch place")
	}
	return place, nil
}

// UpdateRating persists a rating change made with the star control
func (s *PlaceService) UpdateRating(ctx context.Context, id string, rating float64) (*models.Place, error) {
	if !utils.IsValidRating(rating) {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Rating must be between 0 and 5")
	}

	if err := s.Store.UpdateRating(ctx, id, rating); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, utils.NewCustomError(http.StatusNotFound, "Place not found")
		}
		log.Printf("Error updating rating of place %s: %v", id, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update rating")
	}

	return s.GetPlace(ctx, id)
}

// CreatePlaceWithImage uploads the image (if any) and then writes the place with the resulting URL.
// If the write fails the uploaded object is removed so it does not linger unreferenced.
func (s *PlaceService) CreatePlaceWithImage(ctx context.Context, place models.Place, image ImageSource) (*models.Place, error) {
	if err := validatePlace(&place); err != nil {
		return nil, err
	}

	if image == nil {
		place.ImageURL = nil
		return s.SavePlace(ctx, place)
	}

	uploaded, err := s.Media.UploadImage(ctx, image)
	if err != nil {
		if errors.Is(err, ErrImageUnreadable) {
			return nil, utils.NewCustomError(http.StatusBadRequest, "Image could not be read")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to upload image")
	}
	place.ImageURL = &uploaded.URL

	saved, err := s.SavePlace(ctx, place)
	if err != nil {
		if delErr := s.Media.DeleteImage(ctx, uploaded.Key); delErr != nil {
			log.Printf("Failed to remove orphaned image %s: %v", uploaded.Key, delErr)
		}
		return nil, err
	}
	return saved, nil
}
