package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/playersort/sorting"
)

// config is the run configuration. Values come from defaults, then the
// optional YAML file, then command-line flags.
type config struct {
	Input          string `yaml:"input"`
	OutputDir      string `yaml:"output_dir"`
	Locale         string `yaml:"locale"`
	BucketCapacity int    `yaml:"bucket_capacity"`
	MemoryLimit    int64  `yaml:"memory_limit"`
}

func defaultConfig() config {
	return config{
		Input:          "players.csv",
		OutputDir:      ".",
		Locale:         sorting.DefaultLanguage.String(),
		BucketCapacity: sorting.DefaultBucketCapacity,
		MemoryLimit:    0,
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// options translates the configuration into sorting options.
func (c config) options() []sorting.Option {
	return []sorting.Option{
		sorting.WithLocale(c.Locale),
		sorting.WithBucketCapacity(c.BucketCapacity),
		sorting.WithMemoryLimit(c.MemoryLimit),
	}
}
