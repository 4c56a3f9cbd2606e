package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/transitpath/compare"
)

var errNoNetwork = errors.New("no network file: set --network or network in the config file")

// config is the YAML shape of --config; flags given explicitly win.
type config struct {
	Network    string   `yaml:"network"`
	Metric     string   `yaml:"metric"`
	Algorithms []string `yaml:"algorithms"`
	Tolerance  float64  `yaml:"tolerance"`
	LogLevel   string   `yaml:"log_level"`
	Dot        string   `yaml:"dot"`
	Metrics    string   `yaml:"metrics"`
}

func defaultConfig() config {
	return config{
		Metric:     "euclidean",
		Algorithms: []string{"dijkstra", "astar", "bellman-ford"},
		Tolerance:  compare.DefaultTolerance,
		LogLevel:   "info",
	}
}

func readConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// resolveConfig layers the config file (if any) under explicitly set flags.
func resolveConfig(cmd *cobra.Command, flags config, configPath string) (config, error) {
	cfg := defaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = readConfig(configPath); err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("network") {
		cfg.Network = flags.Network
	}
	if fs.Changed("metric") {
		cfg.Metric = flags.Metric
	}
	if fs.Changed("algorithms") {
		cfg.Algorithms = flags.Algorithms
	}
	if fs.Changed("tolerance") {
		cfg.Tolerance = flags.Tolerance
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if fs.Changed("dot") {
		cfg.Dot = flags.Dot
	}
	if fs.Changed("metrics") {
		cfg.Metrics = flags.Metrics
	}

	if cfg.Network == "" {
		return cfg, errNoNetwork
	}
	if cfg.Tolerance < 0 {
		return cfg, fmt.Errorf("tolerance must be >= 0, got %v", cfg.Tolerance)
	}

	return cfg, nil
}
