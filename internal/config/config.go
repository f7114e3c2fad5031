package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Policy   PolicyConfig   `mapstructure:"policy"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// DatabaseConfig selects the gorm driver. Driver is "sqlite" (DSN is a file
// path or ":memory:") or "mysql" (DSN is a go-sql-driver DSN).
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// JWTConfig defines JWT specific configuration.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessExpiration  time.Duration `mapstructure:"access_expiration"`
	RefreshExpiration time.Duration `mapstructure:"refresh_expiration"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// PolicyConfig holds behavior knobs that are policy, not code.
type PolicyConfig struct {
	// AllowLogMutation permits updating/deleting workout logs and
	// attendance records after creation (within the caller's scope).
	AllowLogMutation bool `mapstructure:"allow_log_mutation"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, jwt.access_expiration -> JWT_ACCESS_EXPIRATION
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "gym.db")
	viper.SetDefault("jwt.access_expiration", "1h")
	viper.SetDefault("jwt.refresh_expiration", "24h")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("policy.allow_log_mutation", true)

	err = viper.ReadInConfig()
	// Missing config file is fine; env vars and defaults still apply.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
