package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from a .env file and config.yaml, with
// environment variables overriding file settings. Neither file is required;
// defaults below keep the bot runnable with just BOT_TOKEN and TRELLO_KEY
// in the environment.
func LoadConfig() {
	// Load environment variables from .env, ignored when absent.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, skipping.")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config file is fine; environment and defaults apply.
			log.Printf("Config file (config.yaml) not found, using environment variables and defaults.")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}
}

func setDefaults() {
	viper.SetDefault("bot.prefix", "t!")
	viper.SetDefault("bot.sessionTimeoutMinutes", 5)
	viper.SetDefault("bot.workerQueueSize", 64)
	viper.SetDefault("bot.shutdownGraceSeconds", 5)
	viper.SetDefault("database.path", "data/tokens.db")
	viper.SetDefault("ratelimit.maxPermits", 100)
	viper.SetDefault("ratelimit.windowSeconds", 10)
}
