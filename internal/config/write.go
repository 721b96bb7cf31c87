package config

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/spiplot/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = `# spiplot configuration
# Values here are defaults for 'spiplot render'; flags override them.
`

// Marshal serializes cfg as YAML with a short header comment.
func Marshal(cfg *Config) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return append([]byte(fileHeader), body...), nil
}

// Write saves cfg to path. An existing file is only replaced when force is set.
func Write(path string, cfg *Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			path+" already exists",
			"Use --force to overwrite it.")
	}

	data, err := Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't build config file",
			"")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write "+path,
			"Check directory permissions")
	}
	return nil
}
