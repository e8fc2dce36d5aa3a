package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redis "github.com/redis/go-redis/v9"

	"github.com/loja-labs/backend-loja/internal/catalog"
	"github.com/loja-labs/backend-loja/internal/storage"
)

// Seeds the demo catalog into Redis so a fresh environment serves
// products before the API warms its own cache.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Fatal("REDIS_URL is not set")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to ping Redis: %v", err)
	}

	store := &storage.Redis{Client: client}
	products := catalog.SeedProducts()

	log.Printf("Seeding %d products...", len(products))
	if err := store.SaveJSON(ctx, "catalog:list", products); err != nil {
		log.Fatalf("Failed to seed catalog list: %v", err)
	}
	for _, p := range products {
		if err := store.SaveJSON(ctx, "catalog:product:"+p.ID, p); err != nil {
			log.Fatalf("Failed to seed product %s: %v", p.ID, err)
		}
	}

	log.Println("Seeding completed successfully!")
}
