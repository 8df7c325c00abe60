package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ytget/photo-loader/internal/model"
)

// EnvPrefix is prepended to every environment variable read by LoadEnvironment
const EnvPrefix = "PHOTOLOADER"

// DefaultUserAgent is sent with every image request unless overridden
const DefaultUserAgent = "photo-loader/1.0 (+https://github.com/ytget/photo-loader)"

// Environment holds startup values read from an optional config file and
// the process environment. They seed Settings defaults; values the user
// saved in preferences take precedence.
type Environment struct {
	BaseURL        string `mapstructure:"base_url"`
	ImageWidth     int    `mapstructure:"image_width"`
	ImageHeight    int    `mapstructure:"image_height"`
	RequestTimeout string `mapstructure:"request_timeout"` // Go duration string like "30s"
	ConfirmLoadAll bool   `mapstructure:"confirm_load_all"`
	Language       string `mapstructure:"language"`
	UserAgent      string `mapstructure:"user_agent"`
	LogLevel       string `mapstructure:"log_level"`
}

// DefaultEnvironment returns the built-in values used when nothing is configured
func DefaultEnvironment() *Environment {
	return &Environment{
		BaseURL:        model.DefaultBaseURL,
		ImageWidth:     model.DefaultImageWidth,
		ImageHeight:    model.DefaultImageHeight,
		RequestTimeout: (time.Duration(DefaultRequestTimeoutSec) * time.Second).String(),
		ConfirmLoadAll: DefaultConfirmLoadAll,
		Language:       DefaultLanguage,
		UserAgent:      DefaultUserAgent,
		LogLevel:       "info",
	}
}

// LoadEnvironment reads photo-loader.yaml from "." or "./config" when present,
// then applies PHOTOLOADER_* environment variables and LOG_LEVEL.
func LoadEnvironment() (*Environment, error) {
	return loadEnvironment(viper.New(), []string{".", "./config"})
}

func loadEnvironment(v *viper.Viper, paths []string) (*Environment, error) {
	defaults := DefaultEnvironment()
	v.SetDefault("base_url", defaults.BaseURL)
	v.SetDefault("image_width", defaults.ImageWidth)
	v.SetDefault("image_height", defaults.ImageHeight)
	v.SetDefault("request_timeout", defaults.RequestTimeout)
	v.SetDefault("confirm_load_all", defaults.ConfirmLoadAll)
	v.SetDefault("language", defaults.Language)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetConfigName("photo-loader")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v, "log_level", "LOG_LEVEL", EnvPrefix+"_LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var env Environment
	if err := v.Unmarshal(&env); err != nil {
		return nil, err
	}
	return &env, nil
}

// bindEnv binds a config key to environment variables, logging a failed binding
func bindEnv(v *viper.Viper, input ...string) {
	if err := v.BindEnv(input...); err != nil {
		logger.Warn().Err(err).Strs("binding", input).Msg("Failed to bind environment variable")
	}
}

// RequestTimeoutSeconds parses RequestTimeout, falling back to the default
// when it is empty or malformed.
func (e *Environment) RequestTimeoutSeconds() int {
	if e.RequestTimeout == "" {
		return DefaultRequestTimeoutSec
	}
	d, err := time.ParseDuration(e.RequestTimeout)
	if err != nil || d <= 0 {
		logger.Warn().Err(err).Str("timeout", e.RequestTimeout).Msg("Invalid request timeout, using default")
		return DefaultRequestTimeoutSec
	}
	return int(d.Round(time.Second) / time.Second)
}
