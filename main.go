package main

import (
	"context"
	"errors"
	"favorites/config/database"
	"favorites/config/environment"
	"favorites/middleware"
	"favorites/repositories"
	v1 "favorites/routes/v1"
	"favorites/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := environment.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//firebase init
	clients, err := database.InitFirebase(context.Background(), cfg.Firebase)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	defer clients.Close()

	authenticator := repositories.NewFirebaseAuthenticator(clients.Auth, clients.Toolkit)
	mediaService := services.NewMediaService(repositories.NewStorageBlobStore(clients.Bucket), cfg.UploadTempDir)
	userService := services.NewUserService(repositories.NewFirestoreProfileStore(clients.Firestore))

	svc := v1.Services{
		Places:   services.NewPlaceService(repositories.NewFirestorePlaceStore(clients.Firestore), mediaService),
		Sessions: services.NewSessionService(authenticator, userService),
		Users:    userService,
	}

	authMiddleware := middleware.NoAuth()
	if cfg.RequireAuth {
		authMiddleware = middleware.AuthMiddleware(authenticator)
	} else {
		log.Println("REQUIRE_AUTH is off, place routes are public")
	}

	r := NewRouter(cfg, svc, authMiddleware)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Println("Server running on port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

// NewRouter builds the gin engine with middleware and all v1 routes
func NewRouter(cfg *environment.Config, svc v1.Services, auth gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	v1.RegisterRoutes(r, svc, auth)
	return r
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	for _, o := range origins {
		if o == "*" {
			config.AllowAllOrigins = true
			return config
		}
	}
	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}
