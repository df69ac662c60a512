package spotify

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify/internal/shared"
)

//go:embed config.example.toml
var exampleConf []byte

// Config holds application credentials and client settings loaded from a TOML file.
type Config struct {
	ClientID     string   `toml:"client_id"`
	ClientSecret string   `toml:"client_secret"`
	RedirectURI  string   `toml:"redirect_uri"`
	AutoRefresh  bool     `toml:"auto_refresh"`
	Scopes       []string `toml:"scopes"`
	LogLevel     string   `toml:"log_level"`
}

var (
	ErrMissingClientID    = errors.New("config: client_id is required")
	ErrMissingRedirectURI = errors.New("config: redirect_uri is required")
)

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile writes the embedded example config to path. An existing file is never overwritten.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the fields every flow needs. requireRedirect is set for the authorization code flows.
func (c *Config) Validate(requireRedirect bool) error {
	if c.ClientID == "" {
		return ErrMissingClientID
	}
	if requireRedirect && c.RedirectURI == "" {
		return ErrMissingRedirectURI
	}
	return nil
}

// ScopeList returns the configured scopes.
func (c *Config) ScopeList() []Scope {
	scopes := make([]Scope, len(c.Scopes))
	for i, s := range c.Scopes {
		scopes[i] = Scope(s)
	}
	return scopes
}

// Logger returns a logger writing to w at the configured level. An unknown or empty level means warn.
func (c *Config) Logger(w io.Writer) *log.Logger {
	logger := shared.NewLogger(w)
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		level = log.WarnLevel
	}
	shared.SetLogLevel(logger, level)
	return logger
}

// AuthCodeClient builds an unauthenticated authorization code client from the config.
func (c *Config) AuthCodeClient(opts ...Option) (*AuthCodeClient, error) {
	if err := c.Validate(true); err != nil {
		return nil, err
	}
	return NewAuthCodeClient(NewAuthCodeGrant(c.ClientID, c.ClientSecret), c.RedirectURI, c.AutoRefresh, opts...), nil
}

// PKCEClient builds an unauthenticated PKCE client from the config. The client secret is ignored.
func (c *Config) PKCEClient(opts ...Option) (*PKCEClient, error) {
	if err := c.Validate(true); err != nil {
		return nil, err
	}
	return NewPKCEClient(NewAuthCodeGrantPKCE(c.ClientID), c.RedirectURI, c.AutoRefresh, opts...), nil
}

// ClientCredsClient builds an unauthenticated client credentials client from the config.
func (c *Config) ClientCredsClient(opts ...Option) (*ClientCredsClient, error) {
	if err := c.Validate(false); err != nil {
		return nil, err
	}
	return NewClientCredsClient(NewClientCreds(c.ClientID, c.ClientSecret), c.AutoRefresh, opts...), nil
}
