// Package config loads the settings shared by the glossary binaries.
package config

import "time"

// Config is the root configuration.
type Config struct {
	Glossary  GlossaryConfig  `yaml:"glossary"`
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

// GlossaryConfig points at the word list.
type GlossaryConfig struct {
	Path     string `yaml:"path"     env:"GLOSSARY_PATH"     env-default:"data/words.txt"`
	Encoding string `yaml:"encoding" env:"GLOSSARY_ENCODING" env-default:"gb2312"`
}

// SegmenterConfig holds the segmentation resources. A missing model file
// downgrades crf/hybrid to dag.
type SegmenterConfig struct {
	DictPath  string `yaml:"dict_path"  env:"SEGMENTER_DICT_PATH"  env-default:"data/dictionary.txt"`
	ModelPath string `yaml:"model_path" env:"SEGMENTER_MODEL_PATH" env-default:"data/model.crf"`
	Mode      string `yaml:"mode"       env:"SEGMENTER_MODE"       env-default:"hybrid"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
