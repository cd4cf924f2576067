// Package servicestest provides in-memory stores for exercising services and handlers without Firebase.
package servicestest

import (
	"context"
	"errors"
	"favorites/models"
	"favorites/services"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// PlaceStore is an in-memory services.PlaceStore. Documents are stored by value,
// so callers mutating a returned Place never change what is stored.
type PlaceStore struct {
	mu     sync.Mutex
	docs   map[string]models.Place
	order  []string
	nextID int

	AddErr error
	AllErr error
}

func NewPlaceStore() *PlaceStore {
	return &PlaceStore{docs: map[string]models.Place{}}
}

func (s *PlaceStore) Add(_ context.Context, place *models.Place) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.AddErr != nil {
		return "", s.AddErr
	}
	s.nextID++
	id := fmt.Sprintf("place-%d", s.nextID)
	doc := *place
	doc.ID = ""
	if place.ImageURL != nil {
		url := *place.ImageURL
		doc.ImageURL = &url
	}
	s.docs[id] = doc
	s.order = append(s.order, id)
	return id, nil
}

func (s *PlaceStore) All(_ context.Context) ([]models.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.AllErr != nil {
		return nil, s.AllErr
	}
	var places []models.Place
	for _, id := range s.order {
		p := s.docs[id]
		p.ID = id
		places = append(places, p)
	}
	return places, nil
}

func (s *PlaceStore) Get(_ context.Context, id string) (*models.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.docs[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	p.ID = id
	return &p, nil
}

func (s *PlaceStore) UpdateRating(_ context.Context, id string, rating float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.docs[id]
	if !ok {
		return services.ErrNotFound
	}
	p.Rating = rating
	s.docs[id] = p
	return nil
}

func (s *PlaceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// ProfileStore is an in-memory services.ProfileStore.
type ProfileStore struct {
	mu       sync.Mutex
	Profiles []models.Profile

	AddErr error
}

func (s *ProfileStore) Add(_ context.Context, profile *models.Profile) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.AddErr != nil {
		return "", s.AddErr
	}
	p := *profile
	p.ID = fmt.Sprintf("user-%d", len(s.Profiles)+1)
	s.Profiles = append(s.Profiles, p)
	return p.ID, nil
}

func (s *ProfileStore) FindByEmail(_ context.Context, email string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Profiles {
		if p.Email == email {
			found := p
			return &found, nil
		}
	}
	return nil, services.ErrNotFound
}

// BlobStore is an in-memory services.BlobStore. If WatchDir is set, every upload
// records the names of the files present in that directory at upload time.
type BlobStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Types   map[string]string

	UploadErr error
	URLErr    error
	DeleteErr error

	WatchDir     string
	SeenAtUpload []string
}

func NewBlobStore() *BlobStore {
	return &BlobStore{Objects: map[string][]byte{}, Types: map[string]string{}}
}

func (b *BlobStore) Upload(_ context.Context, key string, r io.Reader, contentType string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.WatchDir != "" {
		entries, _ := os.ReadDir(b.WatchDir)
		for _, e := range entries {
			b.SeenAtUpload = append(b.SeenAtUpload, e.Name())
		}
	}
	if b.UploadErr != nil {
		return b.UploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	b.Objects[key] = data
	b.Types[key] = contentType
	return nil
}

func (b *BlobStore) URL(_ context.Context, key string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.URLErr != nil {
		return "", b.URLErr
	}
	if _, ok := b.Objects[key]; !ok {
		return "", errors.New("object does not exist")
	}
	return "https://blobs.test/" + key, nil
}

func (b *BlobStore) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.DeleteErr != nil {
		return b.DeleteErr
	}
	delete(b.Objects, key)
	return nil
}

// Authenticator is an in-memory services.Authenticator and token verifier.
type Authenticator struct {
	mu       sync.Mutex
	accounts map[string]string // email -> password
	names    map[string]string

	CreateErr   error
	CreateCalls int
}

func NewAuthenticator() *Authenticator {
	return &Authenticator{accounts: map[string]string{}, names: map[string]string{}}
}

func (a *Authenticator) SignIn(_ context.Context, email, password string) (*models.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	stored, ok := a.accounts[email]
	if !ok {
		return nil, errors.New("EMAIL_NOT_FOUND")
	}
	if stored != password {
		return nil, errors.New("INVALID_PASSWORD")
	}
	return &models.Session{
		UserID:    "uid-" + email,
		Email:     email,
		IDToken:   "token-" + email,
		ExpiresIn: 3600,
	}, nil
}

func (a *Authenticator) CreateAccount(_ context.Context, name, email, password string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.CreateCalls++
	if a.CreateErr != nil {
		return "", a.CreateErr
	}
	if _, exists := a.accounts[email]; exists {
		return "", errors.New("EMAIL_EXISTS")
	}
	a.accounts[email] = password
	a.names[email] = name
	return "uid-" + email, nil
}

// VerifyIDToken accepts tokens minted by SignIn.
func (a *Authenticator) VerifyIDToken(_ context.Context, idToken string) (string, string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	email, ok := strings.CutPrefix(idToken, "token-")
	if !ok {
		return "", "", errors.New("malformed token")
	}
	if _, exists := a.accounts[email]; !exists {
		return "", "", errors.New("unknown user")
	}
	return "uid-" + email, email, nil
}
