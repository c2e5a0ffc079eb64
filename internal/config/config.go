// Package config loads server settings from an optional JSON file with
// CHESSMASTER_* environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ListenAddr string `json:"listen_addr"`
	// AllowedOrigins is used for both CORS and websocket origin checks.
	AllowedOrigins  []string `json:"allowed_origins"`
	ReadBufferSize  int      `json:"read_buffer_size"`
	WriteBufferSize int      `json:"write_buffer_size"`
	LogLevel        string   `json:"log_level"`
}

func Default() *Config {
	return &Config{
		ListenAddr:      ":3000",
		AllowedOrigins:  []string{"http://localhost:5173"},
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		LogLevel:        "info",
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("CHESSMASTER_LISTEN_ADDR"); ok && v != "" {
		c.ListenAddr = v
	}
	if v, ok := lookup("CHESSMASTER_ALLOWED_ORIGINS"); ok && v != "" {
		c.AllowedOrigins = splitList(v)
	}
	if v, ok := lookup("CHESSMASTER_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	for name, dst := range map[string]*int{
		"CHESSMASTER_READ_BUFFER_SIZE":  &c.ReadBufferSize,
		"CHESSMASTER_WRITE_BUFFER_SIZE": &c.WriteBufferSize,
	} {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = n
	}
	return nil
}

func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must be set")
	}
	if c.ReadBufferSize <= 0 || c.WriteBufferSize <= 0 {
		return fmt.Errorf("websocket buffer sizes must be positive")
	}
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// CORSOrigins joins AllowedOrigins the way the CORS middleware expects.
func (c *Config) CORSOrigins() string {
	return strings.Join(c.AllowedOrigins, ", ")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
