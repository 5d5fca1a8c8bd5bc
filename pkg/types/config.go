package types

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	MyMemory MyMemoryConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AppEnv          string
	LogLevel        string
}

// MyMemoryConfig holds the credentials sent with every outbound call.
// Both values may be empty.
type MyMemoryConfig struct {
	APIKey       string
	ContactEmail string
}

type CORSConfig struct {
	AllowedOrigins []string
}

const defaultAllowedOrigin = "https://healthcare-translator-wn42.vercel.app"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("READ_TIMEOUT", "15s")
	v.SetDefault("WRITE_TIMEOUT", "0s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigin)
}

// LoadConfig reads configuration from a .env file in the working directory
// and from environment variables, the latter taking precedence.
func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(envFile string) (*Config, error) {
	v := viper.New()

	// Enable environment variable reading first
	v.AutomaticEnv()
	setDefaults(v)

	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Print("No config file found, falling back to environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetString("PORT"),
			ReadTimeout:     v.GetDuration("READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
			AppEnv:          v.GetString("APP_ENV"),
			LogLevel:        v.GetString("LOG_LEVEL"),
		},
		MyMemory: MyMemoryConfig{
			APIKey:       v.GetString("MYMEMORY_API_KEY"),
			ContactEmail: v.GetString("CONTACT_EMAIL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if config.Server.Port == "" {
		config.Server.Port = "5000"
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// GetServerAddress returns the full server address
func (c *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
