package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("cellar_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			Postgresql: PostgresqlConfig{
				URL: viper.GetString("database.url"),
				DSN: viper.GetString("database.dsn"),
			},
			Seed: SeedConfig{
				Enabled: viper.GetBool("seed.enabled"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	Postgresql PostgresqlConfig
	Seed       SeedConfig
}

type GeneralConfig struct {
	LogLevel string
}

type PostgresqlConfig struct {
	URL string
	DSN string
}

// SeedConfig controls whether default categories, fields and rules are
// created at startup.
type SeedConfig struct {
	Enabled bool
}
