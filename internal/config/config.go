package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config is the root configuration for labour, stored in ~/.labour/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	Report ReportConfig `json:"report"`
	Log    LogConfig    `json:"log"`
}

// ReportConfig holds the default dataset and export locations.
type ReportConfig struct {
	// Input is the dataset read when --input is not given.
	Input string `json:"input"`
	// Output is the export path used when --output is not given. "-" is stdout.
	Output string `json:"output"`
	// Format is the export encoding: "json" or "yaml".
	Format string `json:"format"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
	// Format is "text" or "json".
	Format string `json:"format"`
}

const (
	DefaultInput     = "test_data.json"
	DefaultOutput    = "labour_report.json"
	DefaultFormat    = "json"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Report: ReportConfig{
			Input:  DefaultInput,
			Output: DefaultOutput,
			Format: DefaultFormat,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// labour configuration – ~/.labour/config.json
//
// All settings are optional; command-line flags take precedence.
{
  "report": {
    // Dataset with "employees" and "clocks". A .yaml/.yml extension is read as YAML.
    "input": "test_data.json",

    // Export destination. Use "-" to write to stdout.
    "output": "labour_report.json",

    // Export encoding: "json" or "yaml".
    "format": "json"
  },

  "log": {
    // debug, info, warn or error.
    "level": "info",

    // "text" for humans, "json" for log collectors.
    "format": "text"
  }
}
`

// DefaultPath returns the path to ~/.labour/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".labour", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the config at path (DefaultPath when empty), creating it with
// annotated defaults on first run.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return defaultConfig(), err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			slog.Warn("could not create config file", "path", path, "error", writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	def := defaultConfig()
	if cfg.Report.Input == "" {
		cfg.Report.Input = def.Report.Input
	}
	if cfg.Report.Output == "" {
		cfg.Report.Output = def.Report.Output
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = def.Report.Format
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// NewLogger builds a slog.Logger writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q (want text or json)", c.Format)
}
