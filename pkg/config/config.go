// Package config loads wrangle configuration from JWCC (JSON with comments
// and commas) files, layering global and project config under explicit flag
// overrides. Nothing here reads ambient process state: callers pass in the
// environment and working directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// ProjectFileName is the per-project config file, discovered by walking up
// from the working directory.
const ProjectFileName = ".wrangle.jsonc"

// RemoteKind selects which tracker client a remote entry configures.
type RemoteKind string

const (
	// KindHub is a GitHub-like issue tracker.
	KindHub RemoteKind = "hub"
	// KindBoard is an Azure-DevOps-like work-item service.
	KindBoard RemoteKind = "board"
)

// Remote configures one named remote tracker.
type Remote struct {
	Name    string     `json:"name"`
	Kind    RemoteKind `json:"kind"`
	BaseURL string     `json:"base_url"`
	Org     string     `json:"org,omitempty"`
	Project string     `json:"project,omitempty"`
	// TokenEnv names the environment variable holding the API token. The
	// token itself never lives in a config file.
	TokenEnv string `json:"token_env,omitempty"`
}

// Token resolves the remote's API token from the given environment.
func (r Remote) Token(env map[string]string) string {
	if r.TokenEnv == "" {
		return ""
	}
	return env[r.TokenEnv]
}

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	DataDir string   `json:"data_dir,omitempty"`
	Remotes []Remote `json:"remotes,omitempty"`

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // path to global config if loaded, empty otherwise
	Project string // path to project config if loaded, empty otherwise
}

// Remote looks up a configured remote by name.
func (c *Config) Remote(name string) (Remote, error) {
	for _, r := range c.Remotes {
		if r.Name == name {
			return r, nil
		}
	}
	return Remote{}, fmt.Errorf("remote %q is not configured", name)
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDir         string            // working directory for project config discovery
	DataDirOverride string            // --dir flag value; empty means no override
	Env             map[string]string // environment variables
}

// Load reads configuration with the following precedence (highest wins):
// defaults, global user config, project config (nearest .wrangle.jsonc
// walking up from WorkDir), then CLI overrides.
func Load(input LoadInput) (*Config, error) {
	cfg := &Config{}

	if path := globalConfigPath(input.Env); path != "" {
		loaded, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if loaded != nil {
			cfg.Sources.Global = path
			merge(cfg, loaded)
		}
	}

	if path := findProjectConfig(input.WorkDir); path != "" {
		loaded, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if loaded != nil {
			cfg.Sources.Project = path
			merge(cfg, loaded)
		}
	}

	if input.DataDirOverride != "" {
		cfg.DataDir = input.DataDirOverride
	}
	if dir := input.Env["WRANGLE_DIR"]; dir != "" && input.DataDirOverride == "" {
		cfg.DataDir = dir
	}

	return cfg, nil
}

// globalConfigPath returns the global config path, preferring
// $XDG_CONFIG_HOME/wrangle/config.jsonc over ~/.config/wrangle/config.jsonc.
func globalConfigPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "wrangle", "config.jsonc")
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "wrangle", "config.jsonc")
	}
	return ""
}

// findProjectConfig walks up from dir looking for a project config file.
func findProjectConfig(dir string) string {
	for dir != "" {
		candidate := filepath.Join(dir, ProjectFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// loadFile parses one JWCC config file. A missing file is not an error.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// merge overlays src onto dst. Remotes are merged by name, src winning.
func merge(dst, src *Config) {
	if src.DataDir != "" {
		dst.DataDir = src.DataDir
	}
	for _, r := range src.Remotes {
		replaced := false
		for i := range dst.Remotes {
			if dst.Remotes[i].Name == r.Name {
				dst.Remotes[i] = r
				replaced = true
				break
			}
		}
		if !replaced {
			dst.Remotes = append(dst.Remotes, r)
		}
	}
}
