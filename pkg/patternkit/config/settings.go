package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Journal drivers.
const (
	JournalMemory = "memory"
	JournalSQLite = "sqlite"
)

// Settings is the typed configuration of the patternkit tool.
//
// File layout (YAML shown; JSON uses the same keys):
//
//	log:
//	  level: debug          # debug, info, warn, error
//	  format: json          # text, json
//	singleton:
//	  wait_timeout: 2s
//	  retry_attempts: 3
//	  retry_backoff: 100ms
//	journal:
//	  driver: sqlite        # memory, sqlite
//	  path: patternkit.db
//	remote:
//	  slots: 2
//	tracing: true
type Settings struct {
	LogLevel  string
	LogFormat string

	WaitTimeout   time.Duration
	RetryAttempts int
	RetryBackoff  time.Duration

	JournalDriver string
	JournalPath   string

	RemoteSlots int

	Tracing bool
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		LogLevel:      "info",
		LogFormat:     "text",
		WaitTimeout:   0,
		RetryAttempts: 1,
		RetryBackoff:  100 * time.Millisecond,
		JournalDriver: JournalMemory,
		JournalPath:   "patternkit.db",
		RemoteSlots:   2,
	}
}

// FromConfig reads settings from c, falling back to Defaults for missing keys.
func FromConfig(c Config) (Settings, error) {
	d := Defaults()
	log := c.Sub("log")
	single := c.Sub("singleton")
	journal := c.Sub("journal")
	remote := c.Sub("remote")

	s := Settings{
		LogLevel:      log.String("level", d.LogLevel),
		LogFormat:     log.String("format", d.LogFormat),
		WaitTimeout:   single.Duration("wait_timeout", d.WaitTimeout),
		RetryAttempts: single.Int("retry_attempts", d.RetryAttempts),
		RetryBackoff:  single.Duration("retry_backoff", d.RetryBackoff),
		JournalDriver: journal.String("driver", d.JournalDriver),
		JournalPath:   journal.String("path", d.JournalPath),
		RemoteSlots:   remote.Int("slots", d.RemoteSlots),
		Tracing:       c.Bool("tracing", d.Tracing),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads settings from path. An empty path yields Defaults.
func Load(path string) (Settings, error) {
	c, err := FromFile(path)
	if err != nil {
		return Settings{}, err
	}
	return FromConfig(c)
}

// Validate checks value ranges and enumerations.
func (s Settings) Validate() error {
	if _, err := s.SlogLevel(); err != nil {
		return err
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: want text or json", s.LogFormat)
	}
	switch s.JournalDriver {
	case JournalMemory, JournalSQLite:
	default:
		return fmt.Errorf("invalid journal driver %q: want %s or %s", s.JournalDriver, JournalMemory, JournalSQLite)
	}
	if s.JournalDriver == JournalSQLite && s.JournalPath == "" {
		return fmt.Errorf("journal path required for %s driver", JournalSQLite)
	}
	if s.RemoteSlots <= 0 {
		return fmt.Errorf("remote slots must be positive, got %d", s.RemoteSlots)
	}
	if s.RetryAttempts <= 0 {
		return fmt.Errorf("retry attempts must be positive, got %d", s.RetryAttempts)
	}
	if s.WaitTimeout < 0 {
		return fmt.Errorf("wait timeout must not be negative, got %s", s.WaitTimeout)
	}
	return nil
}

// SlogLevel parses LogLevel.
func (s Settings) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return level, nil
}
