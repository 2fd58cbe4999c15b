package main

import (
	"context"
	"fmt"
	"log"

	"schedulebuilder-backend/config"
	"schedulebuilder-backend/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	// Drop tables if they exist (for development - remove in production)
	if err := repository.DropSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}
	log.Println("✓ Dropped existing tables (if any)")

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	log.Println("✓ Created users, schedules and schedule_exports tables")

	fmt.Println("\n✅ Database schema created successfully!")
}
