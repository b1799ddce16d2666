package config

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"tm-migrator/internal/lifecycle"
	"tm-migrator/internal/metadata"
	"tm-migrator/internal/sentinel"
)

// Config is one migration run.
type Config struct {
	Version     string      `yaml:"version"`
	Root        string      `yaml:"root"`
	Source      Source      `yaml:"source"`
	Destination Destination `yaml:"destination"`
	Model       Model       `yaml:"model"`
	Output      Output      `yaml:"output"`
	ErrorMode   ErrorMode   `yaml:"errorMode"`
	LogLevel    LogLevel    `yaml:"logLevel"`
	Metrics     Metrics     `yaml:"metrics"`
}

// Source locates the TM1 extract.
type Source struct {
	MetadataDir string        `yaml:"metadataDir"`
	DataDir     string        `yaml:"dataDir"`
	Objects     StringOrArray `yaml:"objects"`
	// Snapshot, when set, is written after analysis and loaded by later
	// stages instead of re-parsing the extract.
	Snapshot string `yaml:"snapshot,omitempty"`
}

// Destination locates the post-deploy TM2 extract.
type Destination struct {
	ExtractPath string `yaml:"extractPath"`
}

// Model names the TM2 territory model the territories are created in.
type Model struct {
	DeveloperName     string `yaml:"developerName"`
	TypeDeveloperName string `yaml:"typeDeveloperName"`
	ObjectType        string `yaml:"objectType"`
}

// Output locates generated artifacts and snapshots.
type Output struct {
	Dir        string `yaml:"dir"`
	ReportsDir string `yaml:"reportsDir"`
}

// Metrics configures the textfile written at the end of a run.
type Metrics struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()

	return &cfg
}

// applyDefaults fills in default values for optional fields.
func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}

	if c.Root == "" {
		c.Root = "."
	}

	if c.Source.MetadataDir == "" {
		c.Source.MetadataDir = "extract/metadata"
	}

	if c.Source.DataDir == "" {
		c.Source.DataDir = "extract/data"
	}

	if len(c.Source.Objects) == 0 {
		c.Source.Objects = append(StringOrArray(nil), metadata.DefaultObjects...)
	}

	if c.Destination.ExtractPath == "" {
		c.Destination.ExtractPath = "deploy/Territory2.csv"
	}

	if c.Model.ObjectType == "" {
		c.Model.ObjectType = "Account"
	}

	if c.Output.Dir == "" {
		c.Output.Dir = "out"
	}

	if c.Output.ReportsDir == "" {
		c.Output.ReportsDir = path.Join(c.Output.Dir, "reports")
	}
}

// Validate checks the fields a transform run cannot do without.
func (c *Config) Validate() error {
	if c.Model.DeveloperName == "" {
		return fmt.Errorf("model.developerName is required: %w", sentinel.ErrType)
	}

	if c.Model.TypeDeveloperName == "" {
		return fmt.Errorf("model.typeDeveloperName is required: %w", sentinel.ErrType)
	}

	return nil
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// ErrorMode is lifecycle.ErrorMode spelled "raise" or "trap" in YAML.
type ErrorMode struct {
	lifecycle.ErrorMode
}

// UnmarshalYAML implements custom YAML unmarshaling for ErrorMode.
func (m *ErrorMode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	mode, err := lifecycle.ParseErrorMode(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	m.ErrorMode = mode

	return nil
}

// MarshalYAML implements yaml.Marshaler for ErrorMode.
func (m ErrorMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// LogLevel is a slog.Level spelled "debug", "info", "warn" or "error".
type LogLevel struct {
	slog.Level
}

// UnmarshalYAML implements custom YAML unmarshaling for LogLevel.
func (l *LogLevel) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if err := l.Level.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("line %d: log level %q: %w", node.Line, s, sentinel.ErrType)
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler for LogLevel.
func (l LogLevel) MarshalYAML() (any, error) {
	return l.String(), nil
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or list of strings: %w", node.Line, sentinel.ErrType)
	}
}
