package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"schedulebuilder-backend/config"
	"schedulebuilder-backend/repository"
	"schedulebuilder-backend/service"

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

	email := "test@example.com"
	password := "testpassword123"

	userRepo := repository.NewUserRepository(pool)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenExpiry)

	user, err := authService.Register(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			log.Printf("User with email %s already exists", email)
			return
		}
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("✅ Test user created successfully!\n")
	fmt.Printf("   ID: %d\n", user.ID)
	fmt.Printf("   Email: %s\n", email)
	fmt.Printf("   Password: %s\n", password)
}
