// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the global flags.
type Config struct {
	Host            string `yaml:"host"`
	FramesPerBuffer int    `yaml:"frames_per_buffer"`
	Wait            string `yaml:"wait"`
	Verbose         bool   `yaml:"verbose"`
}

// LoadConfig reads a YAML config file. Unknown keys are rejected and an
// empty file yields the zero Config.
func LoadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", filename, err)
	}

	return &cfg, nil
}
