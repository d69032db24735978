package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DB      DBConfig      `mapstructure:"db"`
	Session SessionConfig `mapstructure:"session"`
	Storage StorageConfig `mapstructure:"storage"`
	AppHost string        `mapstructure:"host"`
}

type DBConfig struct {
	Source   string `mapstructure:"source"`
	MaxConns int32  `mapstructure:"max_conns"`
}

type SessionConfig struct {
	Secret       string `mapstructure:"secret"`
	MaxAgeHours  int    `mapstructure:"max_age_hours"`
	CookieSecure bool   `mapstructure:"cookie_secure"`
}

type StorageConfig struct {
	// Provider is "s3" or "local".
	Provider         string `mapstructure:"provider"`
	Path             string `mapstructure:"path"`
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	CloudfrontDomain string `mapstructure:"cloudfront_domain"`
}

func Load() (*Config, error) {
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/configs")
	viper.SetConfigName("settings")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("db.max_conns", 5)
	viper.SetDefault("session.max_age_hours", 24)
	viper.SetDefault("storage.provider", "local")
	viper.SetDefault("storage.path", "./data")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
