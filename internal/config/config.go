package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingDatabaseURL is returned when no database URL is configured.
// There is no sensible default for it; the process must not come up
// pointed at a guessed database.
var ErrMissingDatabaseURL = errors.New("config: database.url is required (set GARMENT_DATABASE_URL or database.url in config.yaml)")

// Config is the process configuration, read from config.yaml in the
// working directory with GARMENT_* environment overrides, for example
// GARMENT_DATABASE_URL or GARMENT_SERVER_ADDR.
type Config struct {
	DatabaseURL string
	RedisAddr   string
	ServerAddr  string
	JWTSecret   string
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("garment")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("redis.addr", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("jwt.secret", "")

	if err := v.ReadInConfig(); err != nil {
		// config file is optional; defaults plus env cover the rest
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	cfg := Config{
		DatabaseURL: v.GetString("database.url"),
		RedisAddr:   v.GetString("redis.addr"),
		ServerAddr:  v.GetString("server.addr"),
		JWTSecret:   v.GetString("jwt.secret"),
	}
	if cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}
	return cfg, nil
}
