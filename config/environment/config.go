package environment

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs at startup.
// Values come from an optional YAML file and are overridden by environment variables.
type Config struct {
	Port string `yaml:"port"`

	Firebase FirebaseConfig `yaml:"firebase"`

	// AllowedOrigins is the CORS allow list. "*" allows every origin.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// UploadTempDir is where images are staged before upload. Empty means os.TempDir().
	UploadTempDir string `yaml:"upload_temp_dir"`

	// RequireAuth guards the place and profile routes with Firebase ID tokens.
	RequireAuth bool `yaml:"require_auth"`
}

type FirebaseConfig struct {
	// CredentialsBase64 is the service account JSON, base64 encoded.
	CredentialsBase64 string `yaml:"credentials_base64"`
	ProjectID         string `yaml:"project_id"`
	StorageBucket     string `yaml:"storage_bucket"`
	// WebAPIKey is used for password sign-in through the Identity Toolkit API.
	WebAPIKey string `yaml:"web_api_key"`
}

func defaults() *Config {
	return &Config{
		Port:           "8080",
		AllowedOrigins: []string{"*"},
		RequireAuth:    true,
	}
}

// Load reads .env (if any), then the YAML file named by FAVORITES_CONFIG (if any),
// then applies environment overrides.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := defaults()

	if path := os.Getenv("FAVORITES_CONFIG"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := GetFirebaseKey(); v != "" {
		cfg.Firebase.CredentialsBase64 = v
	}
	if v := GetFirebaseProjectID(); v != "" {
		cfg.Firebase.ProjectID = v
	}
	if v := os.Getenv("FIREBASE_STORAGE_BUCKET"); v != "" {
		cfg.Firebase.StorageBucket = v
	}
	if v := os.Getenv("FIREBASE_WEB_API_KEY"); v != "" {
		cfg.Firebase.WebAPIKey = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}
	if v := os.Getenv("UPLOAD_TEMP_DIR"); v != "" {
		cfg.UploadTempDir = v
	}
	if v := os.Getenv("REQUIRE_AUTH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RequireAuth = b
		} else {
			log.Printf("Ignoring invalid REQUIRE_AUTH value %q", v)
		}
	}
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	switch {
	case c.Firebase.CredentialsBase64 == "":
		return fmt.Errorf("FIREBASE_CREDENTIALS_BASE64 environment variable is missing")
	case c.Firebase.ProjectID == "":
		return fmt.Errorf("FIREBASE_PROJECT_ID environment variable is missing")
	case c.Firebase.StorageBucket == "":
		return fmt.Errorf("FIREBASE_STORAGE_BUCKET environment variable is missing")
	case c.Firebase.WebAPIKey == "":
		return fmt.Errorf("FIREBASE_WEB_API_KEY environment variable is missing")
	}
	return nil
}

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}
