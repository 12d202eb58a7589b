package main

import (
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/clients/compendium"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/config"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/repositories/characters"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/services/sheet"
)

// newService wires the sheet service from configuration: a Redis repository
// when REDIS_URL is set (in-memory otherwise), and the magic-item registry
// layered over the live equipment API.
func newService(cfg *config.Config) (sheet.Service, error) {
	var repo characters.Repository
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, err
		}

		repo, err = characters.NewRedis(&characters.RedisConfig{
			Client: redis.NewClient(opts),
		})
		if err != nil {
			return nil, err
		}
	} else {
		log.Println("REDIS_URL not set, using in-memory repository")
		repo = characters.NewInMemoryRepository()
	}

	live, err := compendium.New(&compendium.Config{
		HttpClient: &http.Client{
			Timeout: cfg.Compendium.Timeout,
		},
	})
	if err != nil {
		return nil, err
	}

	items := compendium.NewLayered(
		compendium.NewStatic(compendium.MagicItems()),
		live,
	)

	return sheet.NewService(&sheet.ServiceConfig{
		Compendium: items,
		Repository: repo,
	}), nil
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}
