package services

import (
	"context"
	"favorites/models"
	"favorites/utils"
	"log"
	"net/http"
)

var ErrAuthenticationFailed = utils.NewCustomError(http.StatusUnauthorized, "Authentication failed")

const (
	MsgFillBothFields = "Please fill in both fields"
	MsgFillAllFields  = "Please fill in all fields"
	MsgInvalidEmail   = "Invalid email format"
	MsgWeakPassword   = "Weak password. Password should be at least 6 characters long"
	MsgSignUpSuccess  = "User registered and document written successfully"
)

// FieldErrors flags which sign-up inputs were empty, for form highlighting.
type FieldErrors struct {
	Name     bool `json:"nameError"`
	Email    bool `json:"emailError"`
	Password bool `json:"passwordError"`
}

func emptyFields(name, email, password string) FieldErrors {
	return FieldErrors{
		Name:     name == "",
		Email:    email == "",
		Password: password == "",
	}
}

func (f FieldErrors) Any() bool {
	return f.Name || f.Email || f.Password
}

// SignUpError is a sign-up failure that carries per-field flags.
type SignUpError struct {
	StatusCode int
	Message    string
	Fields     FieldErrors
}

func (e *SignUpError) Error() string {
	return e.Message
}

type SessionService struct {
	Auth  Authenticator
	Users *UserService
}

func NewSessionService(auth Authenticator, users *UserService) *SessionService {
	return &SessionService{
		Auth:  auth,
		Users: users,
	}
}

// SignIn checks the credentials with the auth service. Every failure looks the same to the caller.
func (s *SessionService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, utils.NewCustomError(http.StatusBadRequest, MsgFillBothFields)
	}

	session, err := s.Auth.SignIn(ctx, email, password)
	if err != nil {
		log.Printf("Sign-in failed: %v", err)
		return nil, ErrAuthenticationFailed
	}
	return session, nil
}

// SignUp validates the form, creates the account and writes the users profile document.
func (s *SessionService) SignUp(ctx context.Context, name, email, password string) (*models.Profile, error) {
	if fields := emptyFields(name, email, password); fields.Any() {
		return nil, &SignUpError{StatusCode: http.StatusBadRequest, Message: MsgFillAllFields, Fields: fields}
	}
	if !utils.IsEmailValid(email) {
		return nil, utils.NewCustomError(http.StatusBadRequest, MsgInvalidEmail)
	}
	if utils.IsWeakPassword(password) {
		return nil, utils.NewCustomError(http.StatusBadRequest, MsgWeakPassword)
	}

	uid, err := s.Auth.CreateAccount(ctx, name, email, password)
	if err != nil {
		log.Printf("Account creation failed: %v", err)
		return nil, &SignUpError{
			StatusCode: http.StatusBadRequest,
			Message:    ErrAuthenticationFailed.Message,
			Fields:     emptyFields(name, email, password),
		}
	}
	log.Printf("Account created: %s", uid)

	profile, err := s.Users.CreateProfile(ctx, name, email)
	if err != nil {
		log.Printf("Error writing profile document: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Firestore error: "+err.Error())
	}
	return profile, nil
}
