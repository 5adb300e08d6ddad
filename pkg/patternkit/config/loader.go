package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files whose extension has no decoder.
var ErrUnsupportedFormat = errors.New("unsupported config file extension")

type decoder func(data []byte) (Config, error)

var decoders = map[string]decoder{
	".yaml": FromYAML,
	".yml":  FromYAML,
	".json": FromJSON,
}

// FromFile loads a patternkit config file, picking the decoder from the
// extension (.yaml, .yml or .json). An empty path yields an empty Config,
// so every setting falls back to its default.
func FromFile(path string) (Config, error) {
	if path == "" {
		return New(nil), nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	cfg, err := decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromYAML parses a YAML document. An empty document yields an empty Config.
func FromYAML(data []byte) (Config, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return New(m), nil
}

// FromJSON parses a JSON object.
func FromJSON(data []byte) (Config, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return New(m), nil
}
