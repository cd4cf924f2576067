package services

import (
	"context"
	"errors"
	"favorites/models"
	"favorites/utils"
	"log"
	"net/http"
)

type UserService struct {
	Store ProfileStore
}

// NewUserService initializes UserService with the users collection store
func NewUserService(store ProfileStore) *UserService {
	return &UserService{
		Store: store,
	}
}

// CreateProfile writes the {name, email} document for a new account
func (s *UserService) CreateProfile(ctx context.Context, name, email string) (*models.Profile, error) {
	profile := &models.Profile{Name: name, Email: email}

	id, err := s.Store.Add(ctx, profile)
	if err != nil {
		return nil, err
	}
	profile.ID = id
	return profile, nil
}

//profile service

func (s *UserService) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	if email == "" {
		return nil, utils.NewCustomError(http.StatusUnauthorized, "Email is required")
	}

	profile, err := s.Store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, utils.NewCustomError(http.StatusNotFound, "Profile not found")
		}
		log.Printf("Error fetching profile: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to get user profile")
	}
	return profile, nil
}
