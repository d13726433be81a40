package models

// BotConfig mirrors the bot section of config.yaml.
type BotConfig struct {
	Prefix                string `mapstructure:"prefix"`
	AdminChannelID        string `mapstructure:"adminChannelId"`
	SessionTimeoutMinutes int    `mapstructure:"sessionTimeoutMinutes"`
	WorkerQueueSize       int    `mapstructure:"workerQueueSize"`
	ShutdownGraceSeconds  int    `mapstructure:"shutdownGraceSeconds"`
}

// RateLimitConfig mirrors the ratelimit section of config.yaml. The budget
// is global: all guilds draw from the same window.
type RateLimitConfig struct {
	MaxPermits    int `mapstructure:"maxPermits"`
	WindowSeconds int `mapstructure:"windowSeconds"`
}
