// Package config loads the tgfileid configuration from YAML, .env files and
// environment variables.
package config

import (
	_ "embed"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	up "go.mau.fi/util/configupgrade"
	"gopkg.in/yaml.v3"

	"go.mau.fi/tgfileid/pkg/batch"
	"go.mau.fi/tgfileid/pkg/fileid"
)

// EnvPrefix is prepended to the name of every environment variable.
const EnvPrefix = "TGFILEID_"

type VersionConfig struct {
	Major uint8 `yaml:"major" env:"MAJOR"`
	Sub   uint8 `yaml:"sub" env:"SUB"`
}

type Config struct {
	LogLevel      string        `yaml:"log_level" env:"LOG_LEVEL"`
	EncodeVersion VersionConfig `yaml:"encode_version" envPrefix:"ENCODE_VERSION_"`
	LegacyFix     bool          `yaml:"legacy_fix" env:"LEGACY_FIX"`
	Workers       int           `yaml:"workers" env:"WORKERS"`
	CacheSize     int           `yaml:"cache_size" env:"CACHE_SIZE"`
	Mode          string        `yaml:"mode" env:"MODE"`
	Database      string        `yaml:"database" env:"DATABASE"`
}

//go:embed example-config.yaml
var ExampleConfig string

func upgradeConfig(helper up.Helper) {
	helper.Copy(up.Str, "log_level")
	helper.Copy(up.Int, "encode_version", "major")
	helper.Copy(up.Int, "encode_version", "sub")
	helper.Copy(up.Bool, "legacy_fix")
	helper.Copy(up.Int, "workers")
	helper.Copy(up.Int, "cache_size")
	helper.Copy(up.Str, "mode")
	helper.Copy(up.Str, "database")
}

var upgrader = &up.StructUpgrader{
	SimpleUpgrader: upgradeConfig,
	Blocks: [][]string{
		{"encode_version"},
		{"legacy_fix"},
		{"workers"},
		{"database"},
	},
	Base: ExampleConfig,
}

// Load reads the config file at path on top of the defaults, then applies
// .env files in the working directory and TGFILEID_* environment variables.
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	data := []byte(ExampleConfig)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, _, err = up.Do(path, false, upgrader)
			if err != nil {
				return nil, errors.Wrap(err, "upgrade config")
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, "stat config")
		}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	return &cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "invalid log_level %q", c.LogLevel)
	}
	if !c.Version().Supported() {
		return errors.Wrapf(fileid.ErrUnsupportedVersion, "invalid encode_version %s", c.Version())
	}
	if _, err := batch.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.CacheSize < 0 {
		return errors.Errorf("cache_size can't be negative, got %d", c.CacheSize)
	}
	return nil
}

// Version returns the configured encode version.
func (c *Config) Version() fileid.Version {
	return fileid.Version{Major: c.EncodeVersion.Major, Sub: c.EncodeVersion.Sub}
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// BatchOptions returns the batch processor settings. The config must be valid.
func (c *Config) BatchOptions(log zerolog.Logger) batch.Options {
	mode, _ := batch.ParseMode(c.Mode)
	return batch.Options{
		Workers:   c.Workers,
		Mode:      mode,
		CacheSize: c.CacheSize,
		Logger:    log,
	}
}
