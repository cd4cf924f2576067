package services

import (
	"context"
	"errors"
	"favorites/models"
	"io"
)

// PlaceStore persists place documents.
type PlaceStore interface {
	Add(ctx context.Context, place *models.Place) (string, error)
	All(ctx context.Context) ([]models.Place, error)
	Get(ctx context.Context, id string) (*models.Place, error)
	UpdateRating(ctx context.Context, id string, rating float64) error
}

// ProfileStore persists users collection documents.
type ProfileStore interface {
	Add(ctx context.Context, profile *models.Profile) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
}

// BlobStore holds uploaded images.
type BlobStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
	URL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Authenticator talks to the hosted auth service.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	CreateAccount(ctx context.Context, name, email, password string) (string, error)
}

// ErrNotFound is returned by stores when a document does not exist.
var ErrNotFound = errors.New("document not found")
