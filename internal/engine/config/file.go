package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML atomically using a temp file + rename.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Fetch makes the config at src available locally and returns its path.
// Local files are returned as is; anything else (http, s3, git:: ...) is
// downloaded into dir with go-getter.
func Fetch(ctx context.Context, src, dir string) (string, error) {
	if _, err := os.Stat(src); err == nil {
		return src, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}

	dst := filepath.Join(dir, "world.yaml")
	if err := getter.GetFile(dst, src, getter.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("fetch config %s: %w", src, err)
	}
	return dst, nil
}
