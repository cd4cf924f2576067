package repositories

import (
	"context"
	"errors"
	"favorites/models"
	"fmt"

	"firebase.google.com/go/auth"
	"google.golang.org/api/identitytoolkit/v3"
)

// FirebaseAuthenticator creates accounts with the Admin SDK and checks passwords
// through the Identity Toolkit API, which the Admin SDK does not expose.
type FirebaseAuthenticator struct {
	AuthClient *auth.Client
	Toolkit    *identitytoolkit.Service
}

func NewFirebaseAuthenticator(authClient *auth.Client, toolkit *identitytoolkit.Service) *FirebaseAuthenticator {
	return &FirebaseAuthenticator{
		AuthClient: authClient,
		Toolkit:    toolkit,
	}
}

func (a *FirebaseAuthenticator) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := a.Toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if resp.IdToken == "" {
		return nil, errors.New("verify password: empty id token")
	}

	return &models.Session{
		UserID:       resp.LocalId,
		Email:        resp.Email,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

func (a *FirebaseAuthenticator) CreateAccount(ctx context.Context, name, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(name)

	user, err := a.AuthClient.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return user.UID, nil
}

// VerifyIDToken checks a bearer token and returns the user id and email it was issued for.
func (a *FirebaseAuthenticator) VerifyIDToken(ctx context.Context, idToken string) (string, string, error) {
	token, err := a.AuthClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", err
	}
	email, _ := token.Claims["email"].(string)
	return token.UID, email, nil
}
