package config

import (
	"github.com/spf13/viper"
)

// Config is the full runtime configuration, one field per env var.
type Config struct {
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// MySQL DSN in go-sql-driver format
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Empty RedisURL disables the menu cache
	RedisURL string `mapstructure:"REDIS_URL"`

	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
}

// Load reads env vars, optionally merged with a local .env file.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 3000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("DATABASE_URL", "essen:essen@tcp(localhost:3306)/essen?charset=utf8mb4&parseTime=True&loc=Local")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	// The .env file is a dev convenience; a missing file is not an error
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
