// Package config resolves rapidtran settings from flags, environment, an
// optional .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/rapidtran/internal/translator"
)

const EnvPrefix = "RAPIDTRAN"

// Keys.
const (
	KeyTranslateURL      = "translate_url"
	KeyRapidAPIKey       = "rapidapi_key"
	KeyRapidAPIHost      = "rapidapi_host"
	KeyService           = "service"
	KeyTimeout           = "timeout"
	KeyListen            = "listen"
	KeyGoogleCredentials = "google_credentials"
	KeyMyMemoryEmail     = "mymemory_email"
	KeyCheckLanguage     = "check_language"
)

const (
	DefaultService = "rapidapi"
	DefaultTimeout = 30 * time.Second
	DefaultListen  = ":8080"
)

// Services lists the accepted values of the service key.
var Services = []string{"rapidapi", "google", "mymemory"}

// legacyEnv maps keys to the environment names used by the browser build.
var legacyEnv = map[string]string{
	KeyTranslateURL: "VITE_TRANSLATE_URL",
	KeyRapidAPIKey:  "VITE_RAPIDAPI_KEY",
	KeyRapidAPIHost: "VITE_RAPIDAPI_HOST",
}

type Config struct {
	TranslateURL      string
	APIKey            string
	APIHost           string
	Service           string
	Timeout           time.Duration
	Listen            string
	GoogleCredentials string
	MyMemoryEmail     string
	CheckLanguage     bool
}

// Bind registers defaults and environment bindings on v. RAPIDTRAN_* names
// win over the legacy VITE_* names.
func Bind(v *viper.Viper) error {
	v.SetDefault(KeyService, DefaultService)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyListen, DefaultListen)
	v.SetDefault(KeyCheckLanguage, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		if err := v.BindEnv(key, envName(key), legacy); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// LoadDotEnv loads environment variables from the given files, .env when
// none are given. Missing files are skipped; variables already set in the
// environment are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ReadFile reads a YAML config file into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load resolves a Config from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		TranslateURL:      v.GetString(KeyTranslateURL),
		APIKey:            v.GetString(KeyRapidAPIKey),
		APIHost:           v.GetString(KeyRapidAPIHost),
		Service:           v.GetString(KeyService),
		Timeout:           v.GetDuration(KeyTimeout),
		Listen:            v.GetString(KeyListen),
		GoogleCredentials: v.GetString(KeyGoogleCredentials),
		MyMemoryEmail:     v.GetString(KeyMyMemoryEmail),
		CheckLanguage:     v.GetBool(KeyCheckLanguage),
	}

	if !slices.Contains(Services, cfg.Service) {
		return nil, fmt.Errorf("unknown service %q (want one of %v)", cfg.Service, Services)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}
	return cfg, nil
}

// ServiceConfig is the subset of cfg the translation backends need.
func (c *Config) ServiceConfig() translator.ServiceConfig {
	return translator.ServiceConfig{
		Endpoint:    c.TranslateURL,
		APIKey:      c.APIKey,
		APIHost:     c.APIHost,
		Credentials: c.GoogleCredentials,
		Email:       c.MyMemoryEmail,
	}
}
