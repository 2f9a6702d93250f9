package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort        string `mapstructure:"SERVER_PORT"`
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	StormglassBaseURL string `mapstructure:"STORMGLASS_BASE_URL"`
	StormglassAPIKey  string `mapstructure:"STORMGLASS_API_KEY"`
	PhotoBucket       string `mapstructure:"PHOTO_BUCKET"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("STORMGLASS_BASE_URL", "https://api.stormglass.io/v2")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
