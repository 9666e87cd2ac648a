package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Mongo MongoConfig
	Redis RedisConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type MongoConfig struct {
	ConnString string
	Database   string
}

type RedisConfig struct {
	Addr       string
	Password   string
	SessionTTL int // minutes
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// C holds the loaded configuration for package-level consumers
// (middleware, handlers). Set once by Load at startup.
var C *Config

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	viper.SetDefault("APP_NAME", "travel-webapp")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MONGODB_DATABASE", "travel-booking")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("PAYMENT_SESSION_TTL_MINUTES", 30)
	viper.SetDefault("JWT_EXPIRY_HOURS", 8)

	// .env is optional, environment variables alone are enough in deployment
	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, err
			}
		}
	}

	viper.AutomaticEnv()

	C = &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Mongo: MongoConfig{
			ConnString: viper.GetString("MONGODB_CONNSTRING"),
			Database:   viper.GetString("MONGODB_DATABASE"),
		},
		Redis: RedisConfig{
			Addr:       viper.GetString("REDIS_ADDR"),
			Password:   viper.GetString("REDIS_PASSWORD"),
			SessionTTL: viper.GetInt("PAYMENT_SESSION_TTL_MINUTES"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
	}

	return C, nil
}

// JWTSecret works before Load has run (tests, one-off tools) by falling
// back to the raw environment.
func JWTSecret() string {
	if C != nil && C.JWT.Secret != "" {
		return C.JWT.Secret
	}
	return os.Getenv("JWT_SECRET")
}
