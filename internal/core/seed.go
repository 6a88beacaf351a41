package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed is externally supplied initial state, layered on top of the built-in
// channels and the bootstrap account. Seed user passwords are expected to
// be processed by the auth layer before the seed reaches NewState.
type Seed struct {
	Channels         []Channel `yaml:"channels"`
	Messages         []Message `yaml:"messages"`
	Users            []User    `yaml:"users"`
	CurrentChannelID int64     `yaml:"current_channel_id"`
}

// LoadSeedFile reads a Seed from a YAML file.
func LoadSeedFile(path string) (Seed, error) {
	var seed Seed

	data, err := os.ReadFile(path)
	if err != nil {
		return seed, fmt.Errorf("read seed file: %w", err)
	}
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return seed, fmt.Errorf("parse seed file: %w", err)
	}

	return seed, nil
}
