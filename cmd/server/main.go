package main

import (
	"fmt"
	"log"
	"os"

	"go-ideas/internal/api"
	"go-ideas/internal/config"
	"go-ideas/internal/history"
	"go-ideas/internal/holidays"
	"go-ideas/internal/ideas"
	"go-ideas/internal/llm"
	redisdb "go-ideas/internal/redis"
)

func main() {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	keyPresent := "NO"
	if cfg.Anthropic.APIKey != "" {
		keyPresent = "YES"
	}
	log.Printf("[Main] anthropic key present: %s", keyPresent)
	log.Printf("[Main] anthropic base URL: %s", cfg.Anthropic.BaseURL)
	log.Printf("[Main] mocks enabled: %v", cfg.AllowMocks)

	store, err := history.Init(cfg.Storage.DSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "History init error: %v\n", err)
		os.Exit(1)
	}

	holidayClient := holidays.NewClient(cfg.Holidays.BaseURL, cfg.Holidays.Timeout())
	var holidaySource ideas.HolidaySource = holidayClient
	if rdb := redisdb.NewClient(cfg); rdb != nil {
		log.Printf("[Main] holiday cache enabled (redis %s)", cfg.Redis.Addr)
		holidaySource = holidays.NewCachedClient(holidayClient, rdb, cfg.Holidays.CacheTTL())
	}

	svc := ideas.NewService(llm.New(cfg.Anthropic), holidaySource, store, cfg.AllowMocks)

	r := api.SetupRouter(cfg, svc)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s\n", addr)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
