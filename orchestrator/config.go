package orchestrator

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML-encoded Config from r, starting from
// DefaultConfig so a partial document only overrides the fields it names
// — the same "load into a pre-populated default" shape la2go's
// config.LoadLoginServer uses. An empty reader returns the defaults
// unchanged.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("orchestrator: reading config: %w", err)
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("orchestrator: parsing config: %w", err)
	}
	return cfg, nil
}
