package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadInput{WorkDir: t.TempDir(), Env: map[string]string{}})
	require.NoError(t, err)
	assert.Empty(t, cfg.DataDir)
	assert.Empty(t, cfg.Remotes)
	assert.Empty(t, cfg.Sources.Global)
}

func TestLoadGlobalWithComments(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, filepath.Join(home, "wrangle", "config.jsonc"), `{
		// data lives outside the default dir
		"data_dir": "/srv/wrangle",
		"remotes": [
			{"name": "work", "kind": "board", "base_url": "https://dev.example.com", "org": "acme", "project": "platform", "token_env": "BOARD_TOKEN"},
		],
	}`)

	cfg, err := Load(LoadInput{
		WorkDir: t.TempDir(),
		Env:     map[string]string{"XDG_CONFIG_HOME": home},
	})
	require.NoError(t, err)
	assert.Equal(t, "/srv/wrangle", cfg.DataDir)
	assert.NotEmpty(t, cfg.Sources.Global)

	r, err := cfg.Remote("work")
	require.NoError(t, err)
	assert.Equal(t, KindBoard, r.Kind)
	assert.Equal(t, "secret", r.Token(map[string]string{"BOARD_TOKEN": "secret"}))
}

func TestProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, filepath.Join(home, "wrangle", "config.jsonc"),
		`{"data_dir": "/global", "remotes": [{"name": "gh", "kind": "hub", "base_url": "https://api.old.example"}]}`)

	project := t.TempDir()
	nested := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeConfig(t, filepath.Join(project, ProjectFileName),
		`{"data_dir": "/project", "remotes": [{"name": "gh", "kind": "hub", "base_url": "https://api.new.example"}]}`)

	// Discovery walks up from the nested working directory.
	cfg, err := Load(LoadInput{
		WorkDir: nested,
		Env:     map[string]string{"XDG_CONFIG_HOME": home},
	})
	require.NoError(t, err)
	assert.Equal(t, "/project", cfg.DataDir)

	r, err := cfg.Remote("gh")
	require.NoError(t, err)
	assert.Equal(t, "https://api.new.example", r.BaseURL)
}

func TestFlagOverrideWinsOverEnv(t *testing.T) {
	cfg, err := Load(LoadInput{
		WorkDir:         t.TempDir(),
		DataDirOverride: "/flag",
		Env:             map[string]string{"WRANGLE_DIR": "/env"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/flag", cfg.DataDir)

	cfg, err = Load(LoadInput{WorkDir: t.TempDir(), Env: map[string]string{"WRANGLE_DIR": "/env"}})
	require.NoError(t, err)
	assert.Equal(t, "/env", cfg.DataDir)
}

func TestUnknownRemote(t *testing.T) {
	cfg := &Config{}
	_, err := cfg.Remote("nope")
	assert.Error(t, err)
}

func TestLoadBadConfig(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, filepath.Join(home, "wrangle", "config.jsonc"), `{not json at all`)

	_, err := Load(LoadInput{WorkDir: t.TempDir(), Env: map[string]string{"XDG_CONFIG_HOME": home}})
	assert.Error(t, err)
}
