package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trello-bot/bot"
	"trello-bot/config"
	"trello-bot/database"
	"trello-bot/handlers"
	"trello-bot/models"
	"trello-bot/trello"
	"trello-bot/utils"
	"trello-bot/worker"

	"github.com/spf13/viper"
)

func main() {
	config.LoadConfig()

	// The bot must not run without a working token store.
	db, err := database.InitDB(viper.GetString("database.path"))
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.Close()
	store := database.NewTokenStore(db)

	var botConfig models.BotConfig
	if err := viper.UnmarshalKey("bot", &botConfig); err != nil {
		log.Fatalf("Error reading bot config: %v", err)
	}
	var rateConfig models.RateLimitConfig
	if err := viper.UnmarshalKey("ratelimit", &rateConfig); err != nil {
		log.Fatalf("Error reading ratelimit config: %v", err)
	}

	appKey := viper.GetString("TRELLO_KEY")
	if appKey == "" {
		log.Fatalf("No Trello application key provided. Please set TRELLO_KEY in your .env or config file.")
	}

	b, err := bot.New()
	if err != nil {
		log.Fatalf("Error initializing bot: %v", err)
	}
	utils.InitLogger(b.Session)

	// One limiter instance: the call budget is shared across all guilds.
	limiter := trello.NewLimiter(rateConfig.MaxPermits, time.Duration(rateConfig.WindowSeconds)*time.Second)
	notifier := handlers.NewMissingTokenNotifier(b.Session, botConfig.Prefix)
	client := trello.NewRequestHandler(trello.Config{AppKey: appKey}, store, limiter, notifier)

	pool := worker.NewPool(1, botConfig.WorkerQueueSize)
	sessions := handlers.NewSessionManager(time.Duration(botConfig.SessionTimeoutMinutes) * time.Minute)

	h := handlers.New(b, store, client, pool, sessions, botConfig.Prefix)
	h.Register()

	if err := b.Start(sessions); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	b.Stop()
	pool.Stop(time.Duration(botConfig.ShutdownGraceSeconds) * time.Second)
}
