package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New returns a viper instance with defaults and environment overrides
// registered. Callers may add config paths before passing it to FromViper.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("buffer.parallelism", d.Buffer.Parallelism)
	v.SetDefault("buffer.parallel_threshold", d.Buffer.ParallelThreshold)
	v.SetDefault("datetime.min_len", d.DateTime.MinLen)
	v.SetDefault("datetime.max_len", d.DateTime.MaxLen)
	v.SetDefault("datetime.formats", []string{})
	v.SetDefault("addr.delimiters", d.Addr.Delimiters)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the YAML file at path, applies environment overrides and
// validates the result. An empty path loads defaults and environment
// overrides only. A nil logger disables logging.
func Load(path string, logger *zap.Logger) (Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := New()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	cfg, err := FromViper(v)
	if err != nil {
		return Config{}, err
	}

	logger.Info("configuration loaded",
		zap.String("file", v.ConfigFileUsed()),
		zap.Int("parallelism", cfg.Buffer.Parallelism),
		zap.Int("datetime_min_len", cfg.DateTime.MinLen),
		zap.Int("datetime_max_len", cfg.DateTime.MaxLen),
		zap.Int("datetime_formats", len(cfg.DateTime.Formats)),
	)
	return cfg, nil
}
