package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the vecmcp service configuration.
type Config struct {
	LiteLLM LiteLLMConfig `yaml:"litellm"`
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Cache   CacheConfig   `yaml:"cache"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// LiteLLMConfig holds upstream LiteLLM gateway settings.
type LiteLLMConfig struct {
	BaseURL          string `yaml:"base_url"`
	APIKey           string `yaml:"api_key"`
	DefaultStoreID   string `yaml:"default_store_id"`
	TimeoutSec       int    `yaml:"timeout_sec"` // per-call deadline, fixed at construction
	Provider         string `yaml:"provider"`
	VertexAIProject  string `yaml:"vertex_ai_project"`
	VertexAILocation string `yaml:"vertex_ai_location"`
}

// ServerConfig holds MCP serving settings.
type ServerConfig struct {
	Transport   string     `yaml:"transport"`    // stdio, http (default: stdio)
	MetricsPort int        `yaml:"metrics_port"` // stdio mode: health/metrics listener, 0 = off
	HTTP        HTTPConfig `yaml:"http"`
}

// HTTPConfig holds HTTP server settings for the http transport.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// AuthConfig holds inbound API authentication for the http transport.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// CacheConfig holds catalog cache settings.
type CacheConfig struct {
	Driver string      `yaml:"driver"` // none, memory, redis (default: none)
	TTLSec int         `yaml:"ttl_sec"`
	Redis  RedisConfig `yaml:"redis"`
}

// RedisConfig holds redis connection settings for the shared catalog cache.
type RedisConfig struct {
	Addrs    []string `yaml:"addrs"`
	Password string   `yaml:"password"`
}

// SearchConfig holds response shaping settings.
type SearchConfig struct {
	CharacterLimit    int `yaml:"character_limit"`
	DefaultMaxResults int `yaml:"default_max_results"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// FromEnv builds configuration from process environment variables alone.
// MCP hosts typically launch stdio servers with a plain env block and no
// working-directory config tree, so every file-level setting has an
// env-only equivalent.
func FromEnv() (Config, error) {
	var cfg Config
	cfg.LiteLLM.BaseURL = os.Getenv("LITELLM_BASE_URL")
	cfg.LiteLLM.APIKey = os.Getenv("LITELLM_API_KEY")
	cfg.LiteLLM.DefaultStoreID = os.Getenv("LITELLM_VECTOR_STORE_ID")
	cfg.LiteLLM.VertexAIProject = os.Getenv("VERTEX_AI_PROJECT")
	cfg.LiteLLM.VertexAILocation = os.Getenv("VERTEX_AI_LOCATION")
	cfg.Logging.Level = os.Getenv("VECMCP_LOG_LEVEL")

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadOrEnv loads the YAML config for env when one exists and falls back to
// FromEnv otherwise.
func LoadOrEnv(env string) (Config, error) {
	if _, ok := FindPath(env); ok {
		return Load(env)
	}
	return FromEnv()
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.LiteLLM.BaseURL == "" {
		c.LiteLLM.BaseURL = "https://litellm.psolabs.com"
	}
	if c.LiteLLM.TimeoutSec <= 0 {
		c.LiteLLM.TimeoutSec = 30
	}
	if c.LiteLLM.Provider == "" {
		c.LiteLLM.Provider = "vertex_ai"
	}
	if c.LiteLLM.VertexAILocation == "" {
		c.LiteLLM.VertexAILocation = "us-east4"
	}
	if c.Server.Transport == "" {
		c.Server.Transport = "stdio"
	}
	if c.Server.HTTP.Port <= 0 {
		c.Server.HTTP.Port = 8085
	}
	if c.Server.HTTP.ReadTimeoutSec <= 0 {
		c.Server.HTTP.ReadTimeoutSec = 10
	}
	if c.Server.HTTP.WriteTimeoutSec <= 0 {
		// Must outlive the upstream call deadline or long searches get cut mid-response.
		c.Server.HTTP.WriteTimeoutSec = 60
	}
	if c.Server.HTTP.ShutdownSec <= 0 {
		c.Server.HTTP.ShutdownSec = 10
	}
	if c.Cache.Driver == "" {
		c.Cache.Driver = "none"
	}
	if c.Cache.TTLSec <= 0 {
		c.Cache.TTLSec = 300
	}
	if c.Search.CharacterLimit <= 0 {
		c.Search.CharacterLimit = 25000
	}
	if c.Search.DefaultMaxResults <= 0 {
		c.Search.DefaultMaxResults = 5
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.LiteLLM.APIKey == "" {
		return fmt.Errorf("litellm.api_key is required (set LITELLM_API_KEY)")
	}
	if c.LiteLLM.BaseURL == "" {
		return fmt.Errorf("litellm.base_url is required")
	}
	switch c.Server.Transport {
	case "stdio", "http":
		// ok
	default:
		return fmt.Errorf("server.transport must be \"stdio\" or \"http\", got %q", c.Server.Transport)
	}
	if c.Server.HTTP.Port <= 0 || c.Server.HTTP.Port > 65535 {
		return fmt.Errorf("server.http.port must be between 1 and 65535, got %d", c.Server.HTTP.Port)
	}
	if c.Server.MetricsPort < 0 || c.Server.MetricsPort > 65535 {
		return fmt.Errorf("server.metrics_port must be between 0 and 65535, got %d", c.Server.MetricsPort)
	}
	switch c.Cache.Driver {
	case "none", "memory", "redis":
		// ok
	default:
		return fmt.Errorf("cache.driver must be \"none\", \"memory\" or \"redis\", got %q", c.Cache.Driver)
	}
	if c.Cache.Driver == "redis" && len(c.Cache.Redis.Addrs) == 0 {
		return fmt.Errorf("cache.redis.addrs is required when cache.driver is \"redis\"")
	}
	// Keep the served default inside the range the search boundary accepts.
	if c.Search.DefaultMaxResults < 1 || c.Search.DefaultMaxResults > 20 {
		return fmt.Errorf("search.default_max_results must be between 1 and 20, got %d", c.Search.DefaultMaxResults)
	}
	return nil
}

// FindPath locates the config file for env, reporting whether one exists.
func FindPath(env string) (string, bool) {
	path := findConfigPath(env)
	return path, fileExists(path)
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
