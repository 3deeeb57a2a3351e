package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Store drivers for the favorites table.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds the complete application configuration, loadable from
// environment variables (SHOP_ prefix), flags, or YAML config files.
type Config struct {
	Addr     string `default:"127.0.0.1:8080" usage:"State server listen address"`
	UserID   string `usage:"Signed-in user id used for cart operations" flag:"user-id"`
	Backend  BackendConfig
	Store    StoreConfig
	CORS     CORSConfig
	Graceful GracefulConfig
}

// BackendConfig locates the e-commerce backend.
type BackendConfig struct {
	URL     string        `usage:"Backend base URL (SHOP_BACKEND_URL)" flag:"backend-url"`
	Store   string        `default:"shop" usage:"Value of the store header" flag:"backend-store"`
	Timeout time.Duration `default:"10s" usage:"Per-request timeout" flag:"backend-timeout"`
}

// StoreConfig selects and configures the favorites store.
type StoreConfig struct {
	Driver      string `default:"postgres" usage:"Favorites store driver: postgres or memory" flag:"store-driver"`
	DatabaseURL string `usage:"PostgreSQL connection URL (SHOP_STORE_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins []string `default:"*" usage:"Allowed CORS origins"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"1s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"10s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from flags, environment variables and YAML
// config files, then validates it.
func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		Args:      args,
		EnvPrefix: "SHOP",
		Files:     []string{"config.yaml", "/etc/shopfront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first missing or inconsistent setting.
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return errors.New("backend URL is required: set SHOP_BACKEND_URL")
	}
	switch c.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if c.Store.DatabaseURL == "" {
			return errors.New("database URL is required: set SHOP_STORE_DATABASE_URL or DATABASE_URL")
		}
	default:
		return errors.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// applyPlatformDefaults maps the conventional DATABASE_URL and PORT variables
// to the SHOP_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.Store.DatabaseURL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			c.Store.DatabaseURL = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "127.0.0.1:8080" {
		c.Addr = "127.0.0.1:" + port
	}
}
