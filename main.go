package main

import (
	"log"
	"os"

	"menucraft-backend/config"
	"menucraft-backend/routes"
	"menucraft-backend/services"
	"menucraft-backend/store"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("migration: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Fatalf("uploads dir: %v", err)
	}

	st := store.New(db)

	// Nightly analytics retention pruning
	analyticsSvc := services.NewAnalyticsService(st, cfg.EventCap, cfg.EventTrimTo)
	analyticsSvc.StartRetentionScheduler()

	r := routes.SetupRouter(st, cfg)

	log.Printf("MenuCraft running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
