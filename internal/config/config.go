package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jask/cubetimer/internal/scramble"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Timer    TimerConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// TimerConfig holds defaults for new sessions and the frame pacing.
type TimerConfig struct {
	Puzzle         int
	ScrambleLength int `mapstructure:"scramble_length"`
	TickMS         int `mapstructure:"tick_ms"`
	HoldTicks      int `mapstructure:"hold_ticks"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CursorGlyph string `mapstructure:"cursor_glyph"`
	BlinkTicks  int    `mapstructure:"blink_ticks"`
}

// LogConfig holds the log file and level.
type LogConfig struct {
	Path  string
	Level string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "cubetimer")
}

// Dir is the directory holding config.toml and startup.toml.
func Dir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "cubetimer")
}

// Load reads configuration from file and env. Env var overrides use prefix
// CUBETIMER_; a .env file in the working directory is read first.
func Load() (Config, error) {
	return LoadFile(os.Getenv("CUBETIMER_CONFIG"))
}

// LoadFile is Load with an explicit config file; an empty path falls back
// to the default location. A named file must exist and parse; the default
// file may be absent.
func LoadFile(cfgPath string) (Config, error) {
	return load(cfgPath, true)
}

// Defaults returns the built-in settings with env overrides applied,
// ignoring any config file.
func Defaults() (Config, error) {
	return load("", false)
}

// Path is the config file LoadFile reads for cfgPath.
func Path(cfgPath string) string {
	if cfgPath == "" {
		cfgPath = os.Getenv("CUBETIMER_CONFIG")
	}
	if cfgPath == "" {
		cfgPath = filepath.Join(Dir(), "config.toml")
	}
	return cfgPath
}

func load(cfgPath string, readFile bool) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir(), "cubetimer.db"))
	v.SetDefault("timer.puzzle", 3)
	v.SetDefault("timer.scramble_length", 20)
	v.SetDefault("timer.tick_ms", 10)
	v.SetDefault("timer.hold_ticks", 25)
	v.SetDefault("ui.cursor_glyph", "█")
	v.SetDefault("ui.blink_ticks", 50)
	v.SetDefault("log.path", filepath.Join(dataDir(), "cubetimer.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if cfgPath == "" {
		cfgPath = os.Getenv("CUBETIMER_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CUBETIMER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if readFile {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if cfgPath != "" || !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the timer cannot run with.
func (c Config) Validate() error {
	if c.Timer.Puzzle < scramble.MinPuzzle || c.Timer.Puzzle > scramble.MaxPuzzle {
		return fmt.Errorf("timer.puzzle must be %d-%d, got %d", scramble.MinPuzzle, scramble.MaxPuzzle, c.Timer.Puzzle)
	}
	if c.Timer.ScrambleLength < 1 || c.Timer.ScrambleLength > scramble.MaxLength {
		return fmt.Errorf("timer.scramble_length must be 1-%d, got %d", scramble.MaxLength, c.Timer.ScrambleLength)
	}
	if c.Timer.TickMS < 1 {
		return fmt.Errorf("timer.tick_ms must be positive, got %d", c.Timer.TickMS)
	}
	if c.Timer.HoldTicks < 0 {
		return fmt.Errorf("timer.hold_ticks must not be negative, got %d", c.Timer.HoldTicks)
	}
	if len([]rune(c.UI.CursorGlyph)) != 1 {
		return fmt.Errorf("ui.cursor_glyph must be one character, got %q", c.UI.CursorGlyph)
	}
	return nil
}

// CursorRune is the configured cursor glyph.
func (c Config) CursorRune() rune {
	for _, r := range c.UI.CursorGlyph {
		return r
	}
	return 0
}

// Save writes cfg to the default config file, creating the config
// directory if needed.
func Save(cfg Config) error {
	return SaveFile(cfg, Path(""))
}

// SaveFile writes the config to path.
func SaveFile(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("timer.puzzle", cfg.Timer.Puzzle)
	v.Set("timer.scramble_length", cfg.Timer.ScrambleLength)
	v.Set("timer.tick_ms", cfg.Timer.TickMS)
	v.Set("timer.hold_ticks", cfg.Timer.HoldTicks)
	v.Set("ui.cursor_glyph", cfg.UI.CursorGlyph)
	v.Set("ui.blink_ticks", cfg.UI.BlinkTicks)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
