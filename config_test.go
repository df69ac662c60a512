package spotify

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	tu "github.com/desertthunder/spotify/internal/testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.ClientID != "your_spotify_client_id" {
			t.Errorf("expected client_id your_spotify_client_id, got %s", config.ClientID)
		}

		if config.RedirectURI != "http://127.0.0.1:3000/callback" {
			t.Errorf("expected redirect_uri http://127.0.0.1:3000/callback, got %s", config.RedirectURI)
		}

		if !config.AutoRefresh {
			t.Error("expected auto_refresh to default to true")
		}

		if len(config.Scopes) != 2 || config.Scopes[0] != "user-read-email" {
			t.Errorf("unexpected default scopes %v", config.Scopes)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		info, err := os.Stat(configPath)
		if err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		if info.Mode().Perm() != 0600 {
			t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.ClientID != DefaultConfig().ClientID {
			t.Errorf("created config client_id doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `client_id = "test_client_id"
client_secret = "test_secret"
redirect_uri = "http://localhost:8888/callback"
auto_refresh = false
scopes = ["playlist-modify-private"]
log_level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.ClientID != "test_client_id" {
			t.Errorf("expected client_id test_client_id, got %s", config.ClientID)
		}

		if config.AutoRefresh {
			t.Error("expected auto_refresh false")
		}

		scopes := config.ScopeList()
		if len(scopes) != 1 || scopes[0] != ScopePlaylistModifyPrivate {
			t.Errorf("expected [%s], got %v", ScopePlaylistModifyPrivate, scopes)
		}
	})

	t.Run("LoadConfig errors", func(t *testing.T) {
		tmpDir := t.TempDir()

		if _, err := LoadConfig(filepath.Join(tmpDir, "missing.toml")); err == nil {
			t.Error("expected an error for a missing file")
		}

		configPath := filepath.Join(tmpDir, "broken.toml")
		if err := os.WriteFile(configPath, []byte("client_id = "), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected an error for invalid TOML")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		config := &Config{}
		if err := config.Validate(false); !errors.Is(err, ErrMissingClientID) {
			t.Errorf("expected ErrMissingClientID, got %v", err)
		}

		config.ClientID = "id"
		if err := config.Validate(false); err != nil {
			t.Errorf("client credentials need no redirect uri, got %v", err)
		}

		if err := config.Validate(true); !errors.Is(err, ErrMissingRedirectURI) {
			t.Errorf("expected ErrMissingRedirectURI, got %v", err)
		}

		if _, err := config.AuthCodeClient(); !errors.Is(err, ErrMissingRedirectURI) {
			t.Errorf("expected AuthCodeClient to validate, got %v", err)
		}

		if _, err := config.PKCEClient(); !errors.Is(err, ErrMissingRedirectURI) {
			t.Errorf("expected PKCEClient to validate, got %v", err)
		}
	})

	t.Run("Logger", func(t *testing.T) {
		tests := []struct {
			level string
			want  log.Level
		}{
			{"debug", log.DebugLevel},
			{"error", log.ErrorLevel},
			{"", log.WarnLevel},
			{"loud", log.WarnLevel},
		}

		for _, tt := range tests {
			config := &Config{LogLevel: tt.level}
			if got := config.Logger(&bytes.Buffer{}).GetLevel(); got != tt.want {
				t.Errorf("level %q: expected %v, got %v", tt.level, tt.want, got)
			}
		}
	})

	t.Run("Logger writes request logs", func(t *testing.T) {
		f := tu.NewFakeSpotify(t)
		var buf bytes.Buffer

		config := &Config{ClientID: "id", ClientSecret: "secret", LogLevel: "debug"}
		cc, err := config.ClientCredsClient(
			WithAccountsURL(f.AccountsURL()),
			WithAPIURL(f.APIURL()),
			WithLogger(config.Logger(&buf)),
		)
		if err != nil {
			t.Fatalf("failed to build client: %v", err)
		}

		c, err := cc.Authenticate(context.Background())
		if err != nil {
			t.Fatalf("failed to authenticate: %v", err)
		}

		if _, err := c.GetAvailableMarkets(context.Background()); err != nil {
			t.Fatalf("request failed: %v", err)
		}

		if !bytes.Contains(buf.Bytes(), []byte("/markets")) {
			t.Errorf("expected the request to be logged, got %q", buf.String())
		}
	})

	t.Run("AuthCodeClient", func(t *testing.T) {
		config := DefaultConfig()

		client, err := config.AuthCodeClient()
		if err != nil {
			t.Fatalf("failed to build client: %v", err)
		}

		u, err := url.Parse(client.Authorisation(config.ScopeList()...).URL())
		if err != nil {
			t.Fatalf("invalid authorisation url: %v", err)
		}

		q := u.Query()
		if q.Get("client_id") != config.ClientID {
			t.Errorf("expected client_id %s, got %s", config.ClientID, q.Get("client_id"))
		}

		if q.Get("redirect_uri") != config.RedirectURI {
			t.Errorf("expected redirect_uri %s, got %s", config.RedirectURI, q.Get("redirect_uri"))
		}

		if q.Get("scope") != "user-read-email user-read-private" {
			t.Errorf("unexpected scope %q", q.Get("scope"))
		}
	})

	t.Run("PKCEClient", func(t *testing.T) {
		client, err := DefaultConfig().PKCEClient()
		if err != nil {
			t.Fatalf("failed to build client: %v", err)
		}

		u, err := url.Parse(client.Authorisation().URL())
		if err != nil {
			t.Fatalf("invalid authorisation url: %v", err)
		}

		if u.Query().Get("code_challenge_method") != "S256" {
			t.Errorf("expected S256 challenge, got %q", u.Query().Get("code_challenge_method"))
		}
	})
}
