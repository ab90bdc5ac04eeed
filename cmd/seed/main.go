package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/dkovalev/news-api/config"
	"github.com/dkovalev/news-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	username := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, username, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s username=%s password=%s\n", userID, email, username, password)

	var newsID int64
	err = db.QueryRow(`
		INSERT INTO news (title, content, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "Hello, world", "First seeded post.", userID).Scan(&newsID)
	if err != nil {
		log.Fatalf("failed to seed news: %v", err)
	}
	fmt.Printf("seeded news: id=%d user_id=%d\n", newsID, userID)

	// Print a bearer token so seeded-author requests can be exercised by hand
	tokens := helpers.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	token, exp, err := tokens.GenerateToken(userID)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Printf("bearer token (expires %s): %s\n", exp.Format("2006-01-02 15:04:05"), token)
}
