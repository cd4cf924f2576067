package middleware

import (
	"context"
	"favorites/utils"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userId"
	ContextEmail  = "email"
)

// TokenVerifier checks a Firebase ID token.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (uid string, email string, err error)
}

// AuthMiddleware requires a valid "Authorization: Bearer <id token>" header and stores
// the caller's user id and email in the gin context.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		uid, email, err := verifier.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			log.Printf("Rejected ID token: %v", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ContextUserID, uid)
		c.Set(ContextEmail, email)
		c.Next()
	}
}

// NoAuth lets every request through. Used when REQUIRE_AUTH is off.
func NoAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}
