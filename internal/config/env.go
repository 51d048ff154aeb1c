package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/2cwldys/fear-launcher/internal/install"
)

// EnvPrefix is prepended to every environment variable, e.g. FEARFIX_LOG_LEVEL
const EnvPrefix = "FEARFIX"

// Env holds process level configuration that is not exposed in the UI
type Env struct {
	ReleaseBaseURL string
	LogLevel       zapcore.Level
	LogFile        string // empty disables file logging
	AssetsDir      string // empty means next to the executable
}

// LoadEnv reads configuration from FEARFIX_* environment variables.
// An optional fearfix.yaml in the working directory is honored too.
func LoadEnv() (Env, error) {
	v := viper.New()
	v.SetConfigName("fearfix")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("release.base_url", install.DefaultBaseURL)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("assets.dir", "")

	// Config file is optional; env-only is fine.
	_ = v.ReadInConfig()

	env := Env{
		ReleaseBaseURL: strings.TrimRight(strings.TrimSpace(v.GetString("release.base_url")), "/"),
		LogFile:        strings.TrimSpace(v.GetString("log.file")),
		AssetsDir:      strings.TrimSpace(v.GetString("assets.dir")),
	}

	level, err := zapcore.ParseLevel(strings.TrimSpace(v.GetString("log.level")))
	if err != nil {
		return Env{}, fmt.Errorf("invalid log.level: %w", err)
	}
	env.LogLevel = level

	if env.ReleaseBaseURL == "" {
		return Env{}, fmt.Errorf("release.base_url must not be empty")
	}
	u, err := url.Parse(env.ReleaseBaseURL)
	if err != nil {
		return Env{}, fmt.Errorf("invalid release.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Env{}, fmt.Errorf("invalid release.base_url scheme %q", u.Scheme)
	}
	return env, nil
}
