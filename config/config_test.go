package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data/words.txt", cfg.Glossary.Path)
	assert.Equal(t, "gb2312", cfg.Glossary.Encoding)
	assert.Equal(t, "data/dictionary.txt", cfg.Segmenter.DictPath)
	assert.Equal(t, "hybrid", cfg.Segmenter.Mode)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
glossary:
  path: /srv/words.txt
  encoding: gb18030
segmenter:
  mode: dag
server:
  port: 9090
log:
  format: json
`)
	t.Setenv("SERVER_PORT", "9191")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/words.txt", cfg.Glossary.Path)
	assert.Equal(t, "gb18030", cfg.Glossary.Encoding)
	assert.Equal(t, "dag", cfg.Segmenter.Mode)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "data/dictionary.txt", cfg.Segmenter.DictPath)
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	path := writeConfig(t, "glossary:\n  path: from-env.txt\n")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env.txt", cfg.Glossary.Path)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidFileFailsValidation(t *testing.T) {
	path := writeConfig(t, "segmenter:\n  mode: search\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "segmenter.mode")
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Glossary:  GlossaryConfig{Path: "words.txt", Encoding: "gb2312"},
			Segmenter: SegmenterConfig{Mode: "hybrid"},
			Server:    ServerConfig{Port: 8080},
			Log:       LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty path", func(c *Config) { c.Glossary.Path = " " }, "glossary.path"},
		{"unknown encoding", func(c *Config) { c.Glossary.Encoding = "klingon" }, "glossary.encoding"},
		{"unknown mode", func(c *Config) { c.Segmenter.Mode = "fuzzy" }, "segmenter.mode"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
