package repositories

import (
	"context"
	"favorites/models"
	"favorites/services"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const UsersCollection = "users"

// FirestoreProfileStore keeps sign-up profiles in the "users" collection
type FirestoreProfileStore struct {
	FirestoreClient *firestore.Client
}

func NewFirestoreProfileStore(client *firestore.Client) *FirestoreProfileStore {
	return &FirestoreProfileStore{FirestoreClient: client}
}

func (s *FirestoreProfileStore) Add(ctx context.Context, profile *models.Profile) (string, error) {
	docRef, _, err := s.FirestoreClient.Collection(UsersCollection).Add(ctx, map[string]interface{}{
		"name":  profile.Name,
		"email": profile.Email,
	})
	if err != nil {
		return "", err
	}
	return docRef.ID, nil
}

func (s *FirestoreProfileStore) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	iter := s.FirestoreClient.Collection(UsersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", doc.Ref.ID, err)
	}
	profile.ID = doc.Ref.ID
	return &profile, nil
}
