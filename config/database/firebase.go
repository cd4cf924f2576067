package database

import (
	"context"
	"encoding/base64"
	"favorites/config/environment"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	"firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Clients bundles every Firebase handle the services depend on
type Clients struct {
	App       *firebase.App
	Firestore *firestore.Client
	Auth      *auth.Client
	Bucket    *gcs.BucketHandle
	Toolkit   *identitytoolkit.Service
}

// InitFirebase initializes Firestore, Auth, Storage and the Identity Toolkit client
func InitFirebase(ctx context.Context, cfg environment.FirebaseConfig) (*Clients, error) {
	// Decode Base64 string
	decodedCredentials, err := base64.StdEncoding.DecodeString(cfg.CredentialsBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Firebase credentials: %w", err)
	}

	credentialsOpt := option.WithCredentialsJSON(decodedCredentials)

	config := &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}
	app, err := firebase.NewApp(ctx, config, credentialsOpt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	log.Println("Firebase app initialized successfully")

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to initialize Firebase Auth client: %w", err)
	}
	log.Println("Firebase Auth initialized successfully")

	storageClient, err := app.Storage(ctx)
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to initialize Firebase Storage client: %w", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to open storage bucket: %w", err)
	}
	log.Printf("Firebase Storage bucket %s ready", cfg.StorageBucket)

	toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(cfg.WebAPIKey))
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to initialize Identity Toolkit client: %w", err)
	}

	return &Clients{
		App:       app,
		Firestore: firestoreClient,
		Auth:      authClient,
		Bucket:    bucket,
		Toolkit:   toolkit,
	}, nil
}

// Close releases the Firestore connection
func (c *Clients) Close() error {
	return c.Firestore.Close()
}
