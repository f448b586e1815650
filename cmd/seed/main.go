package main

import (
	"fmt"
	"log"
	"math/rand"

	"bookstore/internal/config"
	"bookstore/internal/database"
	"bookstore/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.RefreshToken{},
		&domain.Book{},
		&domain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Rating{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Clean in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM ratings")
	db.Exec("DELETE FROM order_items")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM cart_items")
	db.Exec("DELETE FROM refresh_tokens")
	db.Exec("DELETE FROM books")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		Email:        "admin@bookstore.test",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)

	users := make([]domain.User, 0, 3)
	for i := 1; i <= 3; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("reader123"), bcrypt.DefaultCost)
		u := domain.User{
			Username:     fmt.Sprintf("reader%d", i),
			Email:        fmt.Sprintf("reader%d@bookstore.test", i),
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
		}
		db.Create(&u)
		users = append(users, u)
	}

	log.Println("Creating books...")
	catalog := []domain.Book{
		{Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", PriceCents: 1499},
		{Title: "Hyperion", Author: "Dan Simmons", Genre: "Science Fiction", PriceCents: 1299},
		{Title: "The Name of the Wind", Author: "Patrick Rothfuss", Genre: "Fantasy", PriceCents: 1599},
		{Title: "Mistborn", Author: "Brandon Sanderson", Genre: "Fantasy", PriceCents: 1399},
		{Title: "The Pragmatic Programmer", Author: "Andrew Hunt", Genre: "Programming", PriceCents: 3499},
		{Title: "Clean Architecture", Author: "Robert C. Martin", Genre: "Programming", PriceCents: 2999},
		{Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Classics", PriceCents: 899},
		{Title: "Crime and Punishment", Author: "Fyodor Dostoevsky", Genre: "Classics", PriceCents: 999},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", PriceCents: 1199},
		{Title: "Neuromancer", Author: "William Gibson", Genre: "Science Fiction", PriceCents: 1099},
	}
	for i := range catalog {
		catalog[i].Status = domain.BookStatusActive
		catalog[i].Description = fmt.Sprintf("%s by %s.", catalog[i].Title, catalog[i].Author)
		db.Create(&catalog[i])
	}

	// One hidden title so admin views differ from the public catalog.
	db.Create(&domain.Book{
		Title:      "Out of Print Anthology",
		Author:     "Various",
		Genre:      "Classics",
		PriceCents: 499,
		Status:     domain.BookStatusHidden,
	})

	log.Println("Creating ratings...")
	for n, u := range users {
		// Distinct books per user so the (book, user) unique index holds.
		for i := 0; i < 4; i++ {
			book := catalog[(n+i*3)%len(catalog)]
			db.Create(&domain.Rating{
				BookID: book.ID,
				UserID: u.ID,
				Rating: 3 + rand.Intn(3),
			})
		}
	}

	log.Println("Seed completed")
	log.Println("Admin: admin / admin123")
	log.Println("Readers: reader1..reader3 / reader123")
}
