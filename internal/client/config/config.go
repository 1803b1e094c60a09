package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the settings CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the settings gRPC endpoint.
//   - RequestTimeout: deadline applied to every call to the server.
//   - SessionDB: path of the local SQLite file that keeps the session.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	SessionDB          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
	c.SessionDB = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and the command-line flags in args. Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
