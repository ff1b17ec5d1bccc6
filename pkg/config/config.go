package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Pavel7004/goHidCmd/pkg/hexcmd"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid config")
)

type Config struct {
	Prefix   string
	MaxBytes int
}

func Default() Config {
	return Config{
		Prefix:   hexcmd.DefaultPrefix,
		MaxBytes: 0,
	}
}

type tomlFile struct {
	Prefix   string `toml:"prefix"`
	MaxBytes int    `toml:"max_bytes"`
}

type hclFile struct {
	Prefix   *string `hcl:"prefix,optional"`
	MaxBytes *int    `hcl:"max_bytes,optional"`
}

// Load reads a .toml or .hcl file on top of Default. Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	var (
		cfg Config
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		cfg, err = loadTOML(path)
	case ".hcl":
		cfg, err = loadHCL(path)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Prefix) == "" {
		return fmt.Errorf("%w: prefix must not be empty", ErrInvalidConfig)
	}
	if c.MaxBytes < 0 {
		return fmt.Errorf("%w: max_bytes must not be negative, got %d", ErrInvalidConfig, c.MaxBytes)
	}
	return nil
}

func loadTOML(path string) (Config, error) {
	cfg := Default()

	var raw tomlFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("prefix") {
		cfg.Prefix = strings.TrimSpace(raw.Prefix)
	}
	if meta.IsDefined("max_bytes") {
		cfg.MaxBytes = raw.MaxBytes
	}

	return cfg, nil
}

func loadHCL(path string) (Config, error) {
	cfg := Default()

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	if raw.Prefix != nil {
		cfg.Prefix = strings.TrimSpace(*raw.Prefix)
	}
	if raw.MaxBytes != nil {
		cfg.MaxBytes = *raw.MaxBytes
	}

	return cfg, nil
}
