// Package config loads the tracker connection settings and default
// query. Settings live in a TOML file under the user config dir;
// environment variables fill in anything the file leaves unset, so a
// bare `JIRA_SITE=... kanban` works without a config file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Jira  JiraConfig  `toml:"jira"`
	Query QueryConfig `toml:"query"`
	UI    UIConfig    `toml:"ui"`
}

type JiraConfig struct {
	URL      string `toml:"url"`
	Email    string `toml:"email"`
	APIToken string `toml:"api_token"`
}

type QueryConfig struct {
	JQL string `toml:"jql"`
}

type UIConfig struct {
	RefreshSeconds int `toml:"refresh_seconds"`
}

const defaultJQL = "assignee = currentUser() AND status NOT IN ('Done', 'Shipped', 'Closed', 'Resolved')"

func Default() Config {
	return Config{
		Query: QueryConfig{JQL: defaultJQL},
		UI:    UIConfig{RefreshSeconds: 60},
	}
}

// Path returns the config file location (<user config dir>/kanban/config.toml).
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "kanban", "config.toml"), nil
}

// Load reads the config file if present and then applies environment
// fallbacks for any connection field still unset. A missing file is
// not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()

	p, err := Path()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(p); err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	}

	cfg.applyEnv()
	if cfg.Query.JQL == "" {
		cfg.Query.JQL = defaultJQL
	}
	if cfg.UI.RefreshSeconds <= 0 {
		cfg.UI.RefreshSeconds = 60
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if c.Jira.URL == "" {
		if v := os.Getenv("JIRA_URL"); v != "" {
			c.Jira.URL = v
		} else if site := os.Getenv("JIRA_SITE"); site != "" {
			// JIRA_SITE may be a bare domain (acli convention).
			if strings.HasPrefix(site, "http://") || strings.HasPrefix(site, "https://") {
				c.Jira.URL = site
			} else {
				c.Jira.URL = "https://" + site
			}
		}
	}
	if c.Jira.Email == "" {
		if v := os.Getenv("JIRA_USER"); v != "" {
			c.Jira.Email = v
		} else if v := os.Getenv("JIRA_EMAIL"); v != "" {
			c.Jira.Email = v
		}
	}
	if c.Jira.APIToken == "" {
		if v := os.Getenv("JIRA_API_TOKEN"); v != "" {
			c.Jira.APIToken = v
		}
	}
}

// Save writes the config to its standard location, creating the
// directory as needed. Used by `kanban init` to drop a sample file.
func (c Config) Save() (string, error) {
	p, err := Path()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(p)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return p, nil
}
