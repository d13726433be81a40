package bot

import (
	"fmt"
	"log"

	"trello-bot/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
)

// SessionSweeper purges expired token DM sessions and reports how many were
// removed.
type SessionSweeper interface {
	Sweep() int
}

var c *cron.Cron

// startScheduler starts the cron jobs: a minutely sweep of expired token
// sessions and an hourly status line to the admin channel.
func startScheduler(s *discordgo.Session, sweeper SessionSweeper) {
	log.Println("Initializing scheduler...")
	c = cron.New()

	_, err := c.AddFunc("@every 1m", func() {
		if n := sweeper.Sweep(); n > 0 {
			log.Printf("Swept %d expired token sessions", n)
		}
	})
	if err != nil {
		log.Fatalf("Could not set up session sweep job: %v", err)
	}

	_, err = c.AddFunc("@hourly", func() {
		utils.Info("bot", "status", fmt.Sprintf("Serving %d guilds", len(s.State.Guilds)))
	})
	if err != nil {
		log.Fatalf("Could not set up status job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started.")
}

// stopScheduler stops the cron jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
		log.Println("Scheduler stopped.")
	}
}
