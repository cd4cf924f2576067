package repositories

import (
	"context"
	"favorites/models"
	"favorites/services"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const PlacesCollection = "places"

// FirestorePlaceStore keeps places in the "places" collection
type FirestorePlaceStore struct {
	FirestoreClient *firestore.Client
}

func NewFirestorePlaceStore(client *firestore.Client) *FirestorePlaceStore {
	return &FirestorePlaceStore{FirestoreClient: client}
}

func (s *FirestorePlaceStore) Add(ctx context.Context, place *models.Place) (string, error) {
	docRef, _, err := s.FirestoreClient.Collection(PlacesCollection).Add(ctx, place.Document())
	if err != nil {
		return "", err
	}
	return docRef.ID, nil
}

func (s *FirestorePlaceStore) All(ctx context.Context) ([]models.Place, error) {
	iter := s.FirestoreClient.Collection(PlacesCollection).Documents(ctx)
	defer iter.Stop()

	var places []models.Place
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var place models.Place
		if err := doc.DataTo(&place); err != nil {
			return nil, fmt.Errorf("decode place %s: %w", doc.Ref.ID, err)
		}
		place.ID = doc.Ref.ID
		places = append(places, place)
	}
	return places, nil
}

func (s *FirestorePlaceStore) Get(ctx context.Context, id string) (*models.Place, error) {
	doc, err := s.FirestoreClient.Collection(PlacesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, services.ErrNotFound
		}
		return nil, err
	}

	var place models.Place
	if err := doc.DataTo(&place); err != nil {
		return nil, fmt.Errorf("decode place %s: %w", id, err)
	}
	place.ID = doc.Ref.ID
	return &place, nil
}

// UpdateRating touches only the rating field. Update fails with NotFound if the document is gone.
func (s *FirestorePlaceStore) UpdateRating(ctx context.Context, id string, rating float64) error {
	_, err := s.FirestoreClient.Collection(PlacesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "rating", Value: rating},
	})
	if status.Code(err) == codes.NotFound {
		return services.ErrNotFound
	}
	return err
}
