package models

// Profile is the users collection document written at sign-up.
// It is not keyed by the auth user id.
type Profile struct {
	ID    string `json:"id" firestore:"-"`
	Name  string `json:"name" firestore:"name"`
	Email string `json:"email" firestore:"email"`
}

// Credentials is a transient email/password pair. It is never stored.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is what a successful sign-in hands back to the client.
type Session struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}
