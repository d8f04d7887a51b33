package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/stylofy/stylofy-backend-go/config"
	"github.com/stylofy/stylofy-backend-go/database"
	"github.com/stylofy/stylofy-backend-go/handlers"
	"github.com/stylofy/stylofy-backend-go/middleware"
	"github.com/stylofy/stylofy-backend-go/routes"
	"github.com/stylofy/stylofy-backend-go/store"
	"github.com/stylofy/stylofy-backend-go/token"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Origins,
		AllowCredentials: true,
	}))
	e.Use(middleware.Metrics())

	// Connect to MongoDB
	db, err := database.Connect(cfg.MongoURI, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	users := store.NewUserStore(db)

	idxCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := users.EnsureIndexes(idxCtx); err != nil {
		cancel()
		log.Fatal("Failed to create indexes: ", err)
	}
	cancel()

	products := store.NewProductStore(db)
	orders := store.NewOrderStore(db, products)
	carts := store.NewCartStore(db, products)

	codec := token.NewCodec(cfg.JWTSecret)
	guard := middleware.NewGuard(codec, users)
	h := handlers.New(users, products, orders, carts, codec)

	// Setup routes
	routes.Setup(e, h, guard)

	// Start the server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
