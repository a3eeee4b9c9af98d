package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/wakatime/internal/keystore"
	"github.com/alexanderramin/wakatime/internal/log"
)

// DefaultAPIURL is the base of the public WakaTime v1 API.
const DefaultAPIURL = "https://wakatime.com/api/v1"

// Config holds the client's settings.
type Config struct {
	APIURL    string `yaml:"api_url" json:"api_url"`
	KeyFile   string `yaml:"key_file" json:"key_file"`
	TimeoutMs int    `yaml:"timeout_ms" json:"timeout_ms"`
	LogLevel  string `yaml:"log_level" json:"log_level"`
	LogCalls  bool   `yaml:"log_calls" json:"log_calls"`

	// envProblems records environment overrides that could not be parsed.
	envProblems []string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	keyFile, err := keystore.DefaultPath()
	if err != nil {
		keyFile = keystore.DefaultFileName
	}
	return Config{
		APIURL:    DefaultAPIURL,
		KeyFile:   keyFile,
		TimeoutMs: 10000,
		LogLevel:  "warn",
	}
}

// DefaultPath returns the config file location, honouring WAKATIME_CONFIG.
func DefaultPath() string {
	if v := os.Getenv("WAKATIME_CONFIG"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "wakatime", "config.yaml")
	}
	return filepath.Join(home, ".config", "wakatime", "config.yaml")
}

// Load reads the config file at path (YAML or JSON by extension), falling
// back to defaults when it does not exist, then applies WAKATIME_*
// environment overrides.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := decode(path, data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)
	cfg.KeyFile = expandHome(cfg.KeyFile)
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse YAML config: %w", err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WAKATIME_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("WAKATIME_KEY_FILE"); v != "" {
		cfg.KeyFile = v
	}
	if v := os.Getenv("WAKATIME_TIMEOUT_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			cfg.envProblems = append(cfg.envProblems, fmt.Sprintf("invalid WAKATIME_TIMEOUT_MS %q: must be an integer", v))
		} else {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("WAKATIME_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WAKATIME_LOG_CALLS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			cfg.envProblems = append(cfg.envProblems, fmt.Sprintf("invalid WAKATIME_LOG_CALLS %q: must be a boolean", v))
		} else {
			cfg.LogCalls = b
		}
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Timeout returns the per-request HTTP timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Validate returns an error describing every invalid setting.
func (c Config) Validate() error {
	problems := append([]string(nil), c.envProblems...)

	if u, err := url.Parse(c.APIURL); err != nil || u.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid api_url %q", c.APIURL))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid api_url scheme %q: must be http or https", u.Scheme))
	}
	if c.KeyFile == "" {
		problems = append(problems, "key_file cannot be empty")
	}
	if c.TimeoutMs <= 0 {
		problems = append(problems, fmt.Sprintf("invalid timeout_ms %d: must be positive", c.TimeoutMs))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
