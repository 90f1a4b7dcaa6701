// Package config loads the puzzle server's YAML configuration, following
// the teacher pack's gopkg.in/yaml.v3 decode idiom
// (itohio-EasyRobot/x/marshaller/yaml).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the server and driver configuration. Load starts from Default,
// so fields a partial YAML document omits keep their default values.
type Config struct {
	// ListenAddr is the HTTP/WebSocket bind address, e.g. ":8080".
	ListenAddr string `yaml:"listen_addr"`

	// RedisAddr is the shared-state backend address. Empty disables Redis
	// and falls back to an in-process sharedstate.Local store.
	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`

	// DefaultMaxExpansions and DefaultBatchSize seed /api/auto_solve
	// requests that omit them.
	DefaultMaxExpansions int `yaml:"default_max_expansions"`
	DefaultBatchSize     int `yaml:"default_batch_size"`

	// StepDelayMillis is the pause the driver takes between emitted path
	// steps, matching the Python original's time.sleep(0.25).
	StepDelayMillis int `yaml:"step_delay_millis"`
}

// StepDelay returns StepDelayMillis as a time.Duration.
func (c Config) StepDelay() time.Duration {
	return time.Duration(c.StepDelayMillis) * time.Millisecond
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		ListenAddr:           ":8080",
		RedisAddr:            "",
		RedisDB:              12,
		DefaultMaxExpansions: 50000,
		DefaultBatchSize:     50,
		StepDelayMillis:      250,
	}
}

// Load reads and decodes a YAML config file, filling any field the file
// omits from Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}
