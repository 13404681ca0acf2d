// Package config loads and saves the driver's YAML configuration
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"minitel/internal/transport"
	"minitel/internal/videotex"
)

// Config holds all application configuration
type Config struct {
	Transport TransportConfig `yaml:"transport"`
	Display   DisplayConfig   `yaml:"display"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TransportConfig selects and configures the link to the terminal
type TransportConfig struct {
	Kind    string    `yaml:"kind"`    // "serial" or "ssh"
	Device  string    `yaml:"device"`  // serial device path
	Baud    int       `yaml:"baud"`    // 75, 300, 1200, 4800 or 9600
	Framing string    `yaml:"framing"` // "7E1" (UART parity) or "8N1" (software parity)
	SSH     SSHConfig `yaml:"ssh"`
}

// SSHConfig is the YAML form of transport.SSHConfig
type SSHConfig struct {
	Host              string `yaml:"host"`
	Port              int    `yaml:"port"`
	Username          string `yaml:"username,omitempty"`
	KeyPath           string `yaml:"key_path,omitempty"`
	KnownHostsPath    string `yaml:"known_hosts,omitempty"`
	InsecureIgnoreKey bool   `yaml:"insecure_ignore_host_key,omitempty"`
	Command           string `yaml:"command"`
	TimeoutSeconds    int    `yaml:"timeout_seconds"`
}

// DisplayConfig sets encoder defaults
type DisplayConfig struct {
	TextColor        string `yaml:"text_color"`
	Background       string `yaml:"background"`
	UnsupportedGlyph string `yaml:"unsupported_glyph"` // "skip", "placeholder" or "strip"
	Placeholder      string `yaml:"placeholder"`
	BellDuration     string `yaml:"bell_duration"` // Go duration, e.g. "200ms"
}

// LoggingConfig controls the process log
type LoggingConfig struct {
	File    string `yaml:"file,omitempty"` // empty logs to stderr
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	ssh := transport.DefaultSSHConfig()
	return &Config{
		Transport: TransportConfig{
			Kind:    "serial",
			Device:  "/dev/ttyUSB0",
			Baud:    1200,
			Framing: string(transport.Framing7E1),
			SSH: SSHConfig{
				Port:           ssh.Port,
				KeyPath:        ssh.KeyPath,
				KnownHostsPath: ssh.KnownHostsPath,
				Command:        ssh.Command,
				TimeoutSeconds: int(ssh.Timeout / time.Second),
			},
		},
		Display: DisplayConfig{
			TextColor:        "white",
			Background:       "black",
			UnsupportedGlyph: "skip",
			Placeholder:      "?",
			BellDuration:     "200ms",
		},
	}
}

// Load reads the config at path. A missing file is created with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("No config file found, creating %s", path)
			cfg := DefaultConfig()
			return cfg, cfg.Save(path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Start with defaults, then overlay saved settings
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.Printf("Loaded config from %s", path)
	return cfg, nil
}

// Save writes the config to path, creating its directory
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# Minitel driver configuration\n#\n# transport.kind: serial or ssh\n# display.unsupported_glyph: skip, placeholder or strip\n\n")
	data = append(header, data...)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	log.Printf("Saved config to %s", path)
	return nil
}

// Validate checks every field that has a closed set of values
func (c *Config) Validate() error {
	switch c.Transport.Kind {
	case "serial", "ssh":
	default:
		return fmt.Errorf("unknown transport kind %q", c.Transport.Kind)
	}
	switch transport.Framing(c.Transport.Framing) {
	case transport.Framing7E1, transport.Framing8N1:
	default:
		return fmt.Errorf("unknown framing %q", c.Transport.Framing)
	}
	if _, _, err := c.Colors(); err != nil {
		return err
	}
	if _, _, err := c.GlyphPolicy(); err != nil {
		return err
	}
	if _, err := c.BellDuration(); err != nil {
		return err
	}
	return nil
}

// Colors returns the configured text and background colors
func (c *Config) Colors() (text, background videotex.Color, err error) {
	if text, err = videotex.ParseColor(c.Display.TextColor); err != nil {
		return 0, 0, fmt.Errorf("text_color: %w", err)
	}
	if background, err = videotex.ParseColor(c.Display.Background); err != nil {
		return 0, 0, fmt.Errorf("background: %w", err)
	}
	return text, background, nil
}

// GlyphPolicy returns the unsupported glyph policy and its placeholder
func (c *Config) GlyphPolicy() (videotex.GlyphPolicy, rune, error) {
	placeholder := '?'
	if c.Display.Placeholder != "" {
		r, size := utf8.DecodeRuneInString(c.Display.Placeholder)
		if size != len(c.Display.Placeholder) {
			return 0, 0, fmt.Errorf("placeholder %q must be a single character", c.Display.Placeholder)
		}
		placeholder = r
	}

	switch strings.ToLower(c.Display.UnsupportedGlyph) {
	case "", "skip":
		return videotex.SkipGlyph, placeholder, nil
	case "placeholder":
		return videotex.PlaceholderGlyph, placeholder, nil
	case "strip":
		return videotex.StripGlyph, placeholder, nil
	default:
		return 0, 0, fmt.Errorf("unknown unsupported_glyph policy %q", c.Display.UnsupportedGlyph)
	}
}

// BellDuration returns the pause that follows a bell
func (c *Config) BellDuration() (time.Duration, error) {
	if c.Display.BellDuration == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Display.BellDuration)
	if err != nil {
		return 0, fmt.Errorf("bell_duration: %w", err)
	}
	return d, nil
}

// SoftwareParity reports whether the encoder and keyboard must handle
// parity themselves
func (c *Config) SoftwareParity() bool {
	return transport.Framing(c.Transport.Framing) == transport.Framing8N1
}

// SSH converts the YAML SSH section for transport.DialSSH
func (c *Config) SSH() transport.SSHConfig {
	s := c.Transport.SSH
	return transport.SSHConfig{
		Host:              s.Host,
		Port:              s.Port,
		Timeout:           time.Duration(s.TimeoutSeconds) * time.Second,
		Username:          s.Username,
		KeyPath:           s.KeyPath,
		KnownHostsPath:    s.KnownHostsPath,
		InsecureIgnoreKey: s.InsecureIgnoreKey,
		Command:           s.Command,
	}
}

// EncoderOptions returns the videotex encoder options this config implies
func (c *Config) EncoderOptions() ([]videotex.Option, error) {
	policy, placeholder, err := c.GlyphPolicy()
	if err != nil {
		return nil, err
	}
	opts := []videotex.Option{videotex.WithGlyphPolicy(policy, placeholder)}
	if c.SoftwareParity() {
		opts = append(opts, videotex.WithParity())
	}
	return opts, nil
}

// LogPath returns the log file, resolving a bare name under the logs
// directory. Empty means stderr.
func (c *Config) LogPath() string {
	if c.Logging.File == "" || filepath.IsAbs(c.Logging.File) {
		return c.Logging.File
	}
	return filepath.Join(LogsDir(), c.Logging.File)
}
