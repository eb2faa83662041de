// Package config loads the operator configuration for the ufpeltheme CLI.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. UFPEL_REDIS_URL.
const EnvPrefix = "UFPEL"

// Config is the operator configuration.
type Config struct {
	DirRoot      string `mapstructure:"dirroot"`
	DataRoot     string `mapstructure:"dataroot"`
	WWWRoot      string `mapstructure:"wwwroot"`
	DatabaseURL  string `mapstructure:"database_url"`
	TablePrefix  string `mapstructure:"table_prefix"`
	RedisURL     string `mapstructure:"redis_url"`
	Lang         string `mapstructure:"lang"`
	NameFormat   string `mapstructure:"name_format"`
	LogLevel     string `mapstructure:"log_level"`
	SiteID       int64  `mapstructure:"site_id"`
	SystemCtx    int64  `mapstructure:"system_context_id"`
	Listen       string `mapstructure:"listen"`
	SingleFlight bool   `mapstructure:"singleflight"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		TablePrefix: "mdl_",
		Lang:        "en",
		NameFormat:  "firstname lastname",
		LogLevel:    "info",
		SiteID:      1,
		SystemCtx:   1,
		Listen:      "127.0.0.1:8080",
		WWWRoot:     "http://localhost",
	}
}

// Load reads configuration from, in increasing precedence: defaults, the
// config file (configFile, or ufpeltheme.yaml in the working directory),
// UFPEL_* environment variables and flags that were explicitly set.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("ufpeltheme")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	bindEnvs(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.Visit(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, ok := tagKeys[key]; !ok {
				return
			}
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.WWWRoot = strings.TrimRight(cfg.WWWRoot, "/")
	return cfg, nil
}

var tagKeys = func() map[string]struct{} {
	keys := make(map[string]struct{})
	typ := reflect.TypeOf(Config{})
	for i := 0; i < typ.NumField(); i++ {
		keys[typ.Field(i).Tag.Get("mapstructure")] = struct{}{}
	}
	return keys
}()

// bindEnvs registers every key of cfg so Unmarshal consults the environment.
func bindEnvs(v *viper.Viper, cfg any) {
	typ := reflect.TypeOf(cfg)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("mapstructure")
		if tag == "" {
			tag = strings.ToLower(typ.Field(i).Name)
		}
		_ = v.BindEnv(tag)
	}
}
