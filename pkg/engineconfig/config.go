package engineconfig

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config specifies everything a simulation run needs beyond the model file
// itself.
type Config struct {
	// Seed is the master RNG seed used to derive every tie-break decision
	// point's sub-seed (see pkg/rng). Use 0 to auto-generate from the
	// current time.
	Seed uint64 `yaml:"seed" json:"seed"`

	// Model specifies where the TSV model file lives.
	Model ModelCfg `yaml:"model" json:"model"`

	// Metrics configures the optional Prometheus exposition listener.
	Metrics MetricsCfg `yaml:"metrics" json:"metrics"`

	// Log configures the structured logger.
	Log LogCfg `yaml:"log" json:"log"`
}

// ModelCfg locates the model file to load.
type ModelCfg struct {
	// Path is the filesystem path to the TSV model file.
	Path string `yaml:"path" json:"path"`
}

// MetricsCfg configures the optional metrics listener.
type MetricsCfg struct {
	// Enabled turns on the /metrics HTTP listener.
	Enabled bool `yaml:"enabled" json:"enabled"`

	// ListenAddr is the address the metrics server binds, e.g. ":9090".
	ListenAddr string `yaml:"listenAddr" json:"listenAddr"`
}

// LogCfg configures pkg/applog.
type LogCfg struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level" json:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format" json:"format"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice. Useful
// for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks all configuration constraints, returning an error
// describing the first failure found.
func (c *Config) Validate() error {
	if err := c.Model.Validate(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Validate checks ModelCfg constraints.
func (m *ModelCfg) Validate() error {
	if m.Path == "" {
		return fmt.Errorf("path must be set")
	}
	return nil
}

// Validate checks MetricsCfg constraints.
func (m *MetricsCfg) Validate() error {
	if m.Enabled && m.ListenAddr == "" {
		return fmt.Errorf("listenAddr must be set when metrics are enabled")
	}
	return nil
}

// Validate checks LogCfg constraints.
func (l *LogCfg) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error, got %q", l.Level)
	}
	switch l.Format {
	case "console", "json":
	default:
		return fmt.Errorf("format must be one of console, json, got %q", l.Format)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, used by
// pkg/sim to derive the LSP-placement tie-break RNG.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

func generateSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
