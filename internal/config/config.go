package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"jobmatch/internal/matching"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Engine   EngineConfig
}

type AppConfig struct {
	AppName          string
	Environment      string
	HTTPPort         string
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

type EngineConfig struct {
	TextWeight        float64
	AttributeWeight   float64
	BlendAlpha        float64
	ExperienceWeight  float64
	LocationWeight    float64
	MinScore          float64
	TopK              int
	DisableClassifier bool
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:          req("APP_NAME"),
		Environment:      req("APP_ENV"),
		HTTPPort:         req("HTTP_PORT"),
		CORSAllowOrigins: splitCSV(optDefault("CORS_ALLOW_ORIGINS", "*")),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
	}

	defaults := matching.DefaultOptions()
	cfg.Engine = EngineConfig{
		TextWeight:        optFloat("ENGINE_TEXT_WEIGHT", defaults.Weights.Text),
		AttributeWeight:   optFloat("ENGINE_ATTRIBUTE_WEIGHT", defaults.Weights.Attribute),
		BlendAlpha:        optFloat("ENGINE_BLEND_ALPHA", defaults.Weights.Alpha),
		ExperienceWeight:  optFloat("ENGINE_EXPERIENCE_WEIGHT", defaults.Weights.Experience),
		LocationWeight:    optFloat("ENGINE_LOCATION_WEIGHT", defaults.Weights.Location),
		MinScore:          optFloat("ENGINE_MIN_SCORE", defaults.MinScore),
		TopK:              optInt("ENGINE_TOP_K", defaults.TopK),
		DisableClassifier: optBool("ENGINE_DISABLE_CLASSIFIER", false),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// EngineOptions maps the env-driven config onto the scoring engine options.
func (c Config) EngineOptions() matching.Options {
	return matching.Options{
		Weights: matching.Weights{
			Text:       c.Engine.TextWeight,
			Attribute:  c.Engine.AttributeWeight,
			Alpha:      c.Engine.BlendAlpha,
			Experience: c.Engine.ExperienceWeight,
			Location:   c.Engine.LocationWeight,
		},
		MinScore:          c.Engine.MinScore,
		TopK:              c.Engine.TopK,
		DisableClassifier: c.Engine.DisableClassifier,
	}
}

func optDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func optFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func optInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func optBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func optDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return v
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
