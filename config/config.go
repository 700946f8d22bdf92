package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Classification
	Recognition RecognitionConfig
	Cache       CacheConfig
	Classifier  ClassifierConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	MaxUploadBytes  int64
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
	MaxClients     int
	ClientTTL      time.Duration
}

// RecognitionConfig configures the image label recognizers.
type RecognitionConfig struct {
	Providers         []ProviderConfig
	FallbackEnabled   bool
	RetryAttempts     int
	RetryDelay        time.Duration
	MaxTotalTimeout   time.Duration
	MaxResults        int
	RequireRecognizer bool
}

// ProviderConfig holds configuration for a single label recognizer.
type ProviderConfig struct {
	Name            string
	Enabled         bool
	Priority        int
	APIKey          string
	CredentialsPath string
	CredentialsJSON string
	BaseURL         string
	Model           string
	Timeout         time.Duration
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type ClassifierConfig struct {
	RulesPath string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v, false)
}

// LoadFile loads configuration from an explicit file path, which must exist.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v, true)
}

func load(v *viper.Viper, requireFile bool) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || requireFile {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.MaxUploadBytes = v.GetInt64("http_server.max_upload_bytes")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.CORS.AllowedOrigins = splitList(v.GetStringSlice("cors.allowed_origins"))
	cfg.CORS.AllowCredentials = v.GetBool("cors.allow_credentials")

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")
	cfg.RateLimit.ClientTTL = v.GetDuration("rate_limit.client_ttl")

	// Recognition
	cfg.Recognition.FallbackEnabled = v.GetBool("recognition.fallback_enabled")
	cfg.Recognition.RetryAttempts = v.GetInt("recognition.retry_attempts")
	cfg.Recognition.RetryDelay = v.GetDuration("recognition.retry_delay")
	cfg.Recognition.MaxTotalTimeout = v.GetDuration("recognition.max_total_timeout")
	cfg.Recognition.MaxResults = v.GetInt("recognition.max_results")
	cfg.Recognition.RequireRecognizer = v.GetBool("recognition.require_recognizer")

	if v.IsSet("recognition.providers") {
		providersRaw := v.Get("recognition.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.Recognition.Providers = append(cfg.Recognition.Providers, ProviderConfig{
						Name:            getStringFromMap(providerMap, "name"),
						Enabled:         getBoolFromMap(providerMap, "enabled"),
						Priority:        getIntFromMap(providerMap, "priority"),
						APIKey:          expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						CredentialsPath: expandEnvVar(v, getStringFromMap(providerMap, "credentials_path")),
						CredentialsJSON: expandEnvVar(v, getStringFromMap(providerMap, "credentials_json")),
						BaseURL:         getStringFromMap(providerMap, "base_url"),
						Model:           getStringFromMap(providerMap, "model"),
						Timeout:         getDurationFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}
	applyEnvProviders(v, cfg)

	// Cache & Classifier
	cfg.Cache.Size = v.GetInt("cache.size")
	cfg.Cache.TTL = v.GetDuration("cache.ttl")
	cfg.Classifier.RulesPath = v.GetString("classifier.rules_path")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("http_server.max_upload_bytes", 10<<20)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("rate_limit.max_clients", 1000)
	v.SetDefault("rate_limit.client_ttl", "5m")

	// Recognition defaults
	v.SetDefault("recognition.fallback_enabled", true)
	v.SetDefault("recognition.retry_attempts", 2)
	v.SetDefault("recognition.retry_delay", "500ms")
	v.SetDefault("recognition.max_total_timeout", "30s")
	v.SetDefault("recognition.max_results", 10)
	v.SetDefault("recognition.require_recognizer", false)

	v.SetDefault("cache.size", 256)
	v.SetDefault("cache.ttl", "10m")
}

// applyEnvProviders adds a Vision provider from GOOGLE_APPLICATION_CREDENTIALS,
// GOOGLE_VISION_CREDENTIALS_JSON or GOOGLE_VISION_API_KEY and a Gemini provider from GEMINI_API_KEY when the
// config file does not declare them. They rank after configured providers.
func applyEnvProviders(v *viper.Viper, cfg *Config) {
	has := func(name string) bool {
		for _, p := range cfg.Recognition.Providers {
			if p.Name == name {
				return true
			}
		}
		return false
	}
	next := func() int {
		highest := 0
		for _, p := range cfg.Recognition.Providers {
			if p.Priority > highest {
				highest = p.Priority
			}
		}
		return highest + 1
	}

	creds := v.GetString("google_application_credentials")
	credsJSON := v.GetString("google_vision_credentials_json")
	visionKey := v.GetString("google_vision_api_key")
	if !has("vision") && (creds != "" || credsJSON != "" || visionKey != "") {
		cfg.Recognition.Providers = append(cfg.Recognition.Providers, ProviderConfig{
			Name:            "vision",
			Enabled:         true,
			Priority:        next(),
			CredentialsPath: creds,
			CredentialsJSON: credsJSON,
			APIKey:          visionKey,
		})
	}

	if key := v.GetString("gemini_api_key"); key != "" && !has("gemini") {
		cfg.Recognition.Providers = append(cfg.Recognition.Providers, ProviderConfig{
			Name:     "gemini",
			Enabled:  true,
			Priority: next(),
			APIKey:   key,
		})
	}
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.HTTPServer.MaxUploadBytes <= 0 {
		return fmt.Errorf("http_server.max_upload_bytes must be positive")
	}
	if cfg.Recognition.MaxResults <= 0 {
		return fmt.Errorf("recognition.max_results must be positive")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}

	priorities := make(map[int]string)
	for i, p := range cfg.Recognition.Providers {
		if p.Name == "" {
			return fmt.Errorf("recognition provider %d: name is required", i)
		}
		if !p.Enabled {
			continue
		}
		if p.Priority <= 0 {
			return fmt.Errorf("recognition provider %s: priority must be positive", p.Name)
		}
		if other, ok := priorities[p.Priority]; ok {
			return fmt.Errorf("recognition provider %s: duplicate priority %d (also used by %s)", p.Name, p.Priority, other)
		}
		priorities[p.Priority] = p.Name
	}
	return nil
}

// splitList flattens comma separated entries, which is how env vars arrive.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func getDurationFromMap(m map[string]interface{}, key string) time.Duration {
	s := getStringFromMap(m, key)
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
