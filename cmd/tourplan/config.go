// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML run configuration. Zero values mean "use default";
// command-line flags override whatever the file sets.
type Config struct {
	Input struct {
		Path             string `yaml:"path"`
		Delimiter        string `yaml:"delimiter"`
		IDColumn         string `yaml:"id_column"`
		LatColumn        string `yaml:"lat_column"`
		LonColumn        string `yaml:"lon_column"`
		ConvertToDegrees bool   `yaml:"convert_to_degrees"`
	} `yaml:"input"`

	Solver struct {
		Method           string  `yaml:"method"`
		Start            int     `yaml:"start"`
		DefaultStart     int     `yaml:"default_start"`
		MaxIters         int     `yaml:"max_iters"`
		Eps              float64 `yaml:"eps"`
		TimeLimitSeconds float64 `yaml:"time_limit_seconds"`
	} `yaml:"solver"`

	Output struct {
		Dir      string `yaml:"dir"`
		Workbook bool   `yaml:"workbook"`
	} `yaml:"output"`

	CachePath string `yaml:"cache_path"`
}

// DefaultConfig mirrors the solver library defaults plus the historical
// fallback start index of the settlements dataset this tool grew around.
func DefaultConfig() Config {
	var c Config
	c.Solver.Start = -1
	c.Solver.DefaultStart = 3753
	c.Solver.MaxIters = 1000
	c.Solver.Eps = 1e-9
	c.Solver.TimeLimitSeconds = -1
	c.Output.Dir = "out"

	return c
}

// ReadConfig loads and decodes a YAML config file over the defaults.
func ReadConfig(path string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}

	return c, nil
}
