// Package config layers subtitle session settings from defaults, a config
// file, SUBDEMUX_* environment variables and command line flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mgpai22/subdemux/internal/charset"
	"github.com/mgpai22/subdemux/internal/subtitle"
)

const envPrefix = "SUBDEMUX"

// keys shared by viper, flags and config files
const (
	KeyFormat   = "format"
	KeyFPS      = "fps"
	KeySubFPS   = "sub-fps"
	KeyDelay    = "delay"
	KeyEncoding = "encoding"
	KeyVideo    = "video"
)

type Config struct {
	// grammar name or "auto"
	Format string
	// declared frame rate of the source
	FPS float64
	// forced frame rate, wins over FPS and in-band declarations
	SubFPS float64
	Delay  time.Duration
	// source character set, "" for BOM sniffing with a UTF-8 fallback
	Encoding string
	// companion video whose frame rate is used when FPS is unset
	Video string
}

func Default() Config {
	return Config{
		Format: string(subtitle.FormatAuto),
	}
}

// Load reads the configuration visible through v. Flags must already be bound
// to v under the Key* names. configFile may be empty.
func Load(v *viper.Viper, configFile string) (Config, error) {
	def := Default()
	v.SetDefault(KeyFormat, def.Format)
	v.SetDefault(KeyFPS, def.FPS)
	v.SetDefault(KeySubFPS, def.SubFPS)
	v.SetDefault(KeyDelay, def.Delay)
	v.SetDefault(KeyEncoding, def.Encoding)
	v.SetDefault(KeyVideo, def.Video)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		Format:   v.GetString(KeyFormat),
		FPS:      v.GetFloat64(KeyFPS),
		SubFPS:   v.GetFloat64(KeySubFPS),
		Delay:    v.GetDuration(KeyDelay),
		Encoding: v.GetString(KeyEncoding),
		Video:    v.GetString(KeyVideo),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := subtitle.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	if c.FPS < 0 {
		return fmt.Errorf("invalid fps: %v", c.FPS)
	}
	if c.SubFPS < 0 {
		return fmt.Errorf("invalid sub-fps: %v", c.SubFPS)
	}
	if _, err := charset.Lookup(c.Encoding); err != nil {
		return fmt.Errorf("invalid encoding: %w", err)
	}
	return nil
}

// Options builds parse options; logger may be nil.
func (c Config) Options(logger *zap.SugaredLogger) subtitle.Options {
	return subtitle.Options{
		Format:      c.Format,
		FPS:         c.FPS,
		FPSOverride: c.SubFPS,
		Delay:       c.Delay,
		Encoding:    c.Encoding,
		Logger:      logger,
	}
}
