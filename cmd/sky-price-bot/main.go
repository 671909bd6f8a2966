package main

import (
	"log"

	sdk "github.com/asadbekGo/sky-price-bot"
	"github.com/asadbekGo/sky-price-bot/bot"
)

func main() {
	cfg := sdk.LoadConfig()
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}
	if cfg.Provider == "amadeus" && (cfg.ClientID == "" || cfg.ClientSecret == "") {
		log.Fatal("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are required")
	}

	logger := sdk.NewLogger("sky-price-bot")

	skyPriceBot, err := bot.New(cfg, logger)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if err := skyPriceBot.Run(); err != nil {
		log.Fatalf("bot stopped: %v", err)
	}
}
