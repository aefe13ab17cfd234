package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

const (
	currentVersion  = 1
	defaultTabWidth = 4
	maxTabWidth     = 16
	appDir          = "tilde"
	configFileName  = "config.toml"
	logFileName     = "tilde.log"
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Editor  EditorSettings `toml:"editor"`
	Keys    KeySettings    `toml:"keys"`
	Theme   ThemeSettings  `toml:"theme"`
	Log     LogSettings    `toml:"log"`
}

// EditorSettings controls how documents are shown
type EditorSettings struct {
	TabWidth    int   `toml:"tab_width"`
	LineNumbers *bool `toml:"line_numbers"`
}

// KeySettings lists the key names bound to each command. Names are written
// like "ctrl+q", "esc", "left" or a single character.
type KeySettings struct {
	Quit   []string `toml:"quit"`
	Escape []string `toml:"escape"`
	Insert []string `toml:"insert"`
	Left   []string `toml:"left"`
	Down   []string `toml:"down"`
	Up     []string `toml:"up"`
	Right  []string `toml:"right"`
}

// ThemeSettings holds color names for each part of the screen
type ThemeSettings struct {
	LineNumber string `toml:"line_number"`
	Banner     string `toml:"banner"`
	Tilde      string `toml:"tilde"`
	Message    string `toml:"message"`
	Error      string `toml:"error"`
}

// LogSettings configures the log file
type LogSettings struct {
	Path  string `toml:"path" comment:"empty means <user cache dir>/tilde/tilde.log"`
	Level string `toml:"level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Path() string
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service reading from the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, appDir, configFileName),
	}
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, or the defaults if there is none
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Settings missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	lineNumbers := true
	return &Config{
		Version: currentVersion,
		Editor: EditorSettings{
			TabWidth:    defaultTabWidth,
			LineNumbers: &lineNumbers,
		},
		Keys: KeySettings{
			Quit:   []string{"ctrl+q"},
			Escape: []string{"esc"},
			Insert: []string{"i"},
			Left:   []string{"h", "left"},
			Down:   []string{"j", "down"},
			Up:     []string{"k", "up"},
			Right:  []string{"l", "right"},
		},
		Theme: ThemeSettings{
			LineNumber: "teal",
			Banner:     "purple",
			Tilde:      "gray",
			Message:    "green",
			Error:      "red",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// applyDefaults fills every unset field from DefaultConfig. An empty key
// list counts as unset so a command can never be left unbound.
func (c *Config) applyDefaults() {
	d := DefaultConfig()

	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.Editor.TabWidth == 0 {
		c.Editor.TabWidth = d.Editor.TabWidth
	}
	if c.Editor.LineNumbers == nil {
		c.Editor.LineNumbers = d.Editor.LineNumbers
	}

	keys := []struct{ dst, def *[]string }{
		{&c.Keys.Quit, &d.Keys.Quit},
		{&c.Keys.Escape, &d.Keys.Escape},
		{&c.Keys.Insert, &d.Keys.Insert},
		{&c.Keys.Left, &d.Keys.Left},
		{&c.Keys.Down, &d.Keys.Down},
		{&c.Keys.Up, &d.Keys.Up},
		{&c.Keys.Right, &d.Keys.Right},
	}
	for _, k := range keys {
		if len(*k.dst) == 0 {
			*k.dst = *k.def
		}
	}

	colors := []struct{ dst, def *string }{
		{&c.Theme.LineNumber, &d.Theme.LineNumber},
		{&c.Theme.Banner, &d.Theme.Banner},
		{&c.Theme.Tilde, &d.Theme.Tilde},
		{&c.Theme.Message, &d.Theme.Message},
		{&c.Theme.Error, &d.Theme.Error},
	}
	for _, col := range colors {
		if *col.dst == "" {
			*col.dst = *col.def
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// Validate reports the first setting that cannot be used
func (c *Config) Validate() error {
	if c.Version != currentVersion {
		return fmt.Errorf("unsupported config version %d", c.Version)
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > maxTabWidth {
		return fmt.Errorf("editor.tab_width must be between 1 and %d", maxTabWidth)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	bound := make(map[string]string)
	for _, cmd := range c.Keys.commands() {
		for _, k := range cmd.keys {
			if k == "" {
				return fmt.Errorf("keys.%s contains an empty key name", cmd.name)
			}
			if other, ok := bound[k]; ok && other != cmd.name {
				return fmt.Errorf("key %q is bound to both keys.%s and keys.%s", k, other, cmd.name)
			}
			bound[k] = cmd.name
		}
	}
	return nil
}

type commandKeys struct {
	name string
	keys []string
}

func (k KeySettings) commands() []commandKeys {
	return []commandKeys{
		{"quit", k.Quit},
		{"escape", k.Escape},
		{"insert", k.Insert},
		{"left", k.Left},
		{"down", k.Down},
		{"up", k.Up},
		{"right", k.Right},
	}
}

// ShowLineNumbers reports whether line numbers are drawn before each line
func (c *Config) ShowLineNumbers() bool {
	return c.Editor.LineNumbers == nil || *c.Editor.LineNumbers
}

// LogFile returns the configured log path, or the default under the user
// cache directory.
func (c *Config) LogFile() string {
	if c.Log.Path != "" {
		return c.Log.Path
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, appDir, logFileName)
}
