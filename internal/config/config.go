package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the service reads from the environment (or an
// optional app.env file during local development).
type Config struct {
	ServerPort         string   `mapstructure:"SERVER_PORT"`
	DatabaseURL        string   `mapstructure:"DATABASE_URL"`
	JWTSecret          string   `mapstructure:"JWT_SECRET"`
	ClientOrigin       string   `mapstructure:"CLIENT_ORIGIN"`
	AllowedOrigins     []string `mapstructure:"-"`
	AWSRegion          string   `mapstructure:"AWS_REGION"`
	EmailFrom          string   `mapstructure:"EMAIL_FROM"`
	EnableRegistration bool     `mapstructure:"ENABLE_REGISTRATION"`
}

// LoadConfig reads configuration from environment variables, with an
// optional app.env file in path taking lower precedence.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("ENABLE_REGISTRATION", false)
	viper.SetDefault("AWS_REGION", "ap-southeast-1")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine; the environment is the source of truth.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	cfg.AllowedOrigins = strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",")
	for i := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(cfg.AllowedOrigins[i])
	}

	return cfg, nil
}
