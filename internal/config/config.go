// Package config loads the optional .specverify.yaml run configuration
// (default trace/module paths, output format), decoded with
// github.com/goccy/go-yaml, promoted here from a transitive dependency
// of go-snaps to a direct one exercised by the CLI.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the on-disk run configuration read from .specverify.yaml,
// overridden field-by-field by whatever flags the CLI was invoked
// with.
type Config struct {
	// ModulePath is the default path to the compiled IR module JSON
	// artifact (§6 "Compiled IR module set").
	ModulePath string `yaml:"modulePath"`
	// TracePath is the default path to the observed-state trace JSON
	// artifact (§6 "Observed-state trace").
	TracePath string `yaml:"tracePath"`
	// Format names the output rendering, "text" (default) or "json".
	// The verify and explain commands do not read it; they always print
	// plain text.
	Format string `yaml:"format"`
	// DiagnosticsJSON, when true, emits trace(label, p) diagnostics
	// (§4.E) as JSON lines instead of suppressing them.
	DiagnosticsJSON bool `yaml:"diagnosticsJSON"`
}

// Default returns the configuration used when no .specverify.yaml is
// present.
func Default() Config {
	return Config{Format: "text"}
}

// Load reads and decodes path. A missing file is not an error; it
// returns the default configuration.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	return cfg, nil
}
