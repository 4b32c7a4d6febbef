package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/teatak/glossary/segmenter"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Glossary.Path) == "" {
		return fmt.Errorf("glossary.path is required")
	}
	if _, err := htmlindex.Get(c.Glossary.Encoding); err != nil {
		return fmt.Errorf("glossary.encoding %q: %w", c.Glossary.Encoding, err)
	}
	if _, err := segmenter.ParseMode(c.Segmenter.Mode); err != nil {
		return fmt.Errorf("segmenter.mode: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	return nil
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
