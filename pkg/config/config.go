package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig           `mapstructure:"server"`
	Database   DatabaseConfig         `mapstructure:"database"`
	Redis      RedisConfig            `mapstructure:"redis"`
	Moderation ModerationConfig       `mapstructure:"moderation"`
	Sync       map[string]interface{} `mapstructure:"sync"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ModerationConfig struct {
	// NsfwThreshold is the minimum classifier confidence at which an NSFW
	// flag hides content from the public automatically.
	NsfwThreshold float64 `mapstructure:"nsfw_threshold"`
	// MisleadingThreshold is carried for symmetry with the analysis
	// contract; derivation currently quarantines on the boolean flag alone.
	MisleadingThreshold float64 `mapstructure:"misleading_threshold"`
	SyncIntervalSeconds int     `mapstructure:"sync_interval_seconds"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return err
	}
	setDefaultValues()
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Database.SSLMode == "" {
		globalConfig.Database.SSLMode = "disable"
	}
	if globalConfig.Moderation.NsfwThreshold == 0 {
		globalConfig.Moderation.NsfwThreshold = 0.7
	}
	if globalConfig.Moderation.MisleadingThreshold == 0 {
		globalConfig.Moderation.MisleadingThreshold = 0.8
	}
	if globalConfig.Moderation.SyncIntervalSeconds == 0 {
		globalConfig.Moderation.SyncIntervalSeconds = 5
	}
}

func GetConfig() *Config {
	return &globalConfig
}
