package main

import (
	"context"
	"log"
	"time"

	"bookstore/internal/config"
	"bookstore/internal/database"
	"bookstore/internal/domain"
	"bookstore/internal/repository"

	"github.com/joho/godotenv"
)

// Prunes the append-only refresh token table: expired rows go immediately,
// revoked rows are kept for 30 days in case of an audit and then dropped.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx := context.Background()
	tokens := repository.NewRefreshTokenRepository(db)

	if err := tokens.DeleteExpired(ctx); err != nil {
		log.Fatalf("cleanup expired refresh tokens failed: %v", err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -30)
	res := db.WithContext(ctx).
		Where("revoked = ? AND created_at < ?", true, cutoff).
		Delete(&domain.RefreshToken{})
	if res.Error != nil {
		log.Fatalf("cleanup revoked refresh tokens failed: %v", res.Error)
	}

	log.Printf("auth cleanup completed: old_revoked=%d", res.RowsAffected)
}
