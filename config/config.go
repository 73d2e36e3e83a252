package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Store    StoreConfig    `mapstructure:"store"`
	Geo      GeoConfig      `mapstructure:"geo"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// UpstreamConfig points at the remote commerce API the gateway composes over.
type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StoreConfig locates the local sqlite file used as the session cache
// (tokens, profile, device id, last-known location).
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// GeoConfig controls the bounded wait on location requests; a fixed
// latitude/longitude pins the gateway to one spot (kiosk deployments).
type GeoConfig struct {
	Timeout  time.Duration `mapstructure:"timeout"`
	FixedLat float64       `mapstructure:"fixed_lat"`
	FixedLng float64       `mapstructure:"fixed_lng"`
	UseFixed bool          `mapstructure:"use_fixed"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// Load reads the YAML config file when present and applies environment
// overrides with the STOREFRONT_ prefix (e.g. STOREFRONT_SERVER_PORT).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("upstream.base_url", "http://localhost:8000/api")
	v.SetDefault("upstream.timeout", 15*time.Second)
	v.SetDefault("store.path", "storefront.db")
	v.SetDefault("geo.timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Addr is the listen address for the HTTP surface.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
