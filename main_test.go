package main

import (
	"favorites/config/environment"
	"favorites/middleware"
	v1 "favorites/routes/v1"
	"favorites/services"
	"favorites/services/servicestest"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCorsConfig(t *testing.T) {
	all := corsConfig(nil)
	assert.True(t, all.AllowAllOrigins)

	star := corsConfig([]string{"https://a.example", "*"})
	assert.True(t, star.AllowAllOrigins)
	assert.Empty(t, star.AllowOrigins)

	listed := corsConfig([]string{"https://a.example"})
	assert.False(t, listed.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example"}, listed.AllowOrigins)
	assert.True(t, listed.AllowCredentials)
	assert.Contains(t, listed.AllowMethods, "PATCH")
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	users := services.NewUserService(&servicestest.ProfileStore{})
	svc := v1.Services{
		Places:   services.NewPlaceService(servicestest.NewPlaceStore(), services.NewMediaService(servicestest.NewBlobStore(), t.TempDir())),
		Sessions: services.NewSessionService(servicestest.NewAuthenticator(), users),
		Users:    users,
	}
	cfg := &environment.Config{AllowedOrigins: []string{"https://app.example"}}
	r := NewRouter(cfg, svc, middleware.NoAuth())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/v1/places", nil)
	req.Header.Set("Origin", "https://app.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
}
