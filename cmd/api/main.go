package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bookstore/internal/config"
	"bookstore/internal/database"
	"bookstore/internal/domain"
	"bookstore/internal/middleware"
	"bookstore/internal/modules/auth"
	"bookstore/internal/modules/cart"
	"bookstore/internal/modules/catalog"
	"bookstore/internal/modules/checkout"
	"bookstore/internal/modules/ratings"
	"bookstore/internal/pkg/token"
	"bookstore/internal/repository"
	"bookstore/internal/session"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.RefreshToken{},
		&domain.Book{},
		&domain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Rating{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	bookRepo := repository.NewBookRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	codec := token.New(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAccessTTL, cfg.RefreshTTL)
	sessions := session.NewManager(cfg.SessionTTL)
	cookieOpts := session.CookieOptions{
		Path:     cfg.CookiePath,
		Secure:   cfg.CookieSecure,
		SameSite: session.SameSiteFromString(cfg.CookieSameSite),
	}

	authService := auth.NewService(userRepo, tokenRepo, codec)
	authHandler := auth.NewHandler(authService, sessions, cookieOpts, cfg.SessionTTL)

	catalogService := catalog.NewService(bookRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	cartService := cart.NewService(cartRepo, bookRepo)
	cartHandler := cart.NewHandler(cartService)

	checkoutService := checkout.NewService(orderRepo, cartRepo, checkout.NewTestProvider(""), "usd")
	checkoutHandler := checkout.NewHandler(checkoutService)

	ratingsService := ratings.NewService(ratingRepo, bookRepo)
	ratingsHandler := ratings.NewHandler(ratingsService)

	r := gin.New()
	r.Use(middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		ratingsHandler.RegisterPublicRoutes(v1)
		checkoutHandler.RegisterWebhookRoutes(v1)

		// browser clients ride the session cookie (with transparent
		// refresh-token recovery), API clients a bearer token; the guard
		// dispatches on the Authorization header
		protected := v1.Group("/")
		protected.Use(middleware.AuthRequired(codec, sessions, authService, cookieOpts, cfg.SessionTTL))
		{
			cartHandler.RegisterRoutes(protected)
			checkoutHandler.RegisterRoutes(protected)
			ratingsHandler.RegisterProtectedRoutes(protected)
		}

		// API clients authenticate per request with a bearer token
		api := v1.Group("/")
		api.Use(middleware.JWTAuth(codec))
		{
			authHandler.RegisterProtectedRoutes(api)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(codec), middleware.RequireRole(authService, string(domain.RoleAdmin)))
		{
			catalogHandler.RegisterAdminRoutes(admin)
		}
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
