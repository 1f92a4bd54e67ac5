package mdext

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"src.mdkit.dev/pkg/env"
)

// Config is the content of a configuration file, for example:
//
//	extensions: [expand-tabs, heading-id-prefix]
//	headingIDPrefix: doc-
//	tabWidth: 8
type Config struct {
	// Names of builtin extensions to enable, in order.
	Extensions []string `yaml:"extensions"`
	// Used by heading-id-prefix.
	HeadingIDPrefix string `yaml:"headingIDPrefix"`
	// Used by expand-tabs.
	TabWidth int `yaml:"tabWidth"`
}

// ReadConfig decodes a Config from YAML. Unknown keys are errors. An empty
// input gives an empty Config.
func ReadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if cfg.TabWidth < 0 {
		return nil, fmt.Errorf("tabWidth must not be negative, got %d", cfg.TabWidth)
	}
	return &cfg, nil
}

// LoadConfig reads a Config from the named file.
func LoadConfig(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// ResolveConfig loads the named configuration file. If name is empty, the file
// named by the MDKIT_CONFIG environment variable is loaded instead; if that is
// empty too, an empty Config is returned.
func ResolveConfig(name string) (*Config, error) {
	if name == "" {
		name = os.Getenv(env.MDKIT_CONFIG)
	}
	if name == "" {
		return &Config{}, nil
	}
	logger.Printf("loading config from %s", name)
	return LoadConfig(name)
}

// NewHost returns a Host with the extensions named in cfg.Extensions. A nil
// cfg gives a Host with no extensions.
func NewHost(cfg *Config) (*Host, error) {
	h := &Host{}
	if cfg == nil {
		return h, nil
	}
	for _, name := range cfg.Extensions {
		ext, err := Lookup(name, cfg)
		if err != nil {
			return nil, err
		}
		h.With(ext)
	}
	logger.Printf("enabled extensions: %v", h.Names())
	return h, nil
}
