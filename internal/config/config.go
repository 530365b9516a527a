// Package config resolves server settings from defaults, an optional YAML
// file, FITM8_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-fitm8/internal/logging"
)

// EnvPrefix namespaces environment overrides, e.g. FITM8_LOG_LEVEL.
const EnvPrefix = "FITM8"

// Keys understood by Load.
const (
	KeyAddr             = "addr"
	KeyGrace            = "grace"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
	KeyContentPath      = "content.path"
	KeyContentWatch     = "content.watch"
	KeyTemplatesDir     = "templates.dir"
	KeyTemplatesReload  = "templates.reload"
	KeyCarouselInterval = "carousel.interval"
	KeySessionsTTL      = "sessions.ttl"
	KeySessionsKeep     = "sessions.keepalive"
	KeyCookieSecure     = "cookie.secure"
)

type Config struct {
	Addr      string          `mapstructure:"addr"`
	Grace     time.Duration   `mapstructure:"grace"`
	Log       LogConfig       `mapstructure:"log"`
	Content   ContentConfig   `mapstructure:"content"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Carousel  CarouselConfig  `mapstructure:"carousel"`
	Sessions  SessionsConfig  `mapstructure:"sessions"`
	Cookie    CookieConfig    `mapstructure:"cookie"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ContentConfig points at a YAML copy document. An empty path serves the
// embedded copy.
type ContentConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// TemplatesConfig overrides the embedded templates with a directory.
type TemplatesConfig struct {
	Dir    string `mapstructure:"dir"`
	Reload bool   `mapstructure:"reload"`
}

type CarouselConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// SessionsConfig bounds testimonial stream sessions. KeepAlive must stay
// below TTL or idle streams expire between comments.
type SessionsConfig struct {
	TTL       time.Duration `mapstructure:"ttl"`
	KeepAlive time.Duration `mapstructure:"keepalive"`
}

type CookieConfig struct {
	Secure bool `mapstructure:"secure"`
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyGrace, 5*time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatJSON)
	v.SetDefault(KeyContentPath, "")
	v.SetDefault(KeyContentWatch, false)
	v.SetDefault(KeyTemplatesDir, "")
	v.SetDefault(KeyTemplatesReload, false)
	v.SetDefault(KeyCarouselInterval, 5*time.Second)
	v.SetDefault(KeySessionsTTL, 2*time.Minute)
	v.SetDefault(KeySessionsKeep, 15*time.Second)
	v.SetDefault(KeyCookieSecure, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file when set and decodes the merged settings.
func Load(v *viper.Viper, file string) (Config, error) {
	if v == nil {
		v = New()
	}
	if file = strings.TrimSpace(file); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeyAddr))
	}
	if c.Grace < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyGrace))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", KeyLogLevel, err))
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("%s must be %q or %q", KeyLogFormat, logging.FormatJSON, logging.FormatConsole))
	}
	if c.Content.Watch && strings.TrimSpace(c.Content.Path) == "" {
		errs = append(errs, fmt.Errorf("%s requires %s", KeyContentWatch, KeyContentPath))
	}
	if c.Carousel.Interval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyCarouselInterval))
	}
	if c.Sessions.TTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeySessionsTTL))
	}
	if c.Sessions.KeepAlive <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeySessionsKeep))
	} else if c.Sessions.TTL > 0 && c.Sessions.KeepAlive >= c.Sessions.TTL {
		errs = append(errs, fmt.Errorf("%s (%s) must be shorter than %s (%s)",
			KeySessionsKeep, c.Sessions.KeepAlive, KeySessionsTTL, c.Sessions.TTL))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}
