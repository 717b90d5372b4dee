package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"butik/internal/config"
	"butik/internal/handlers"
	"butik/internal/middleware"
	"butik/internal/models"
	"butik/internal/repositories"
	"butik/internal/services"
	"butik/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// The broker is advisory infrastructure: if it is down the storefront
	// still runs, it just stops publishing catalog events.
	var publisher services.EventPublisher
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("RabbitMQ unavailable, catalog events disabled: %v", err)
	} else {
		defer mqClient.Close()
		publisher = mqClient

		go func() {
			log.Println("Starting RabbitMQ consumer for catalog events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received catalog event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeCatalogEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Initialize Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo, publisher)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, publisher)
	uploadService := services.NewUploadService(cfg.UploadDir, cfg.UploadURL)

	// --- Initialize Fiber App ---
	engine := html.New("./web/templates", ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layout",
	})
	store := session.New(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(middleware.ViewContext(store))

	// Static files, including the public upload directory.
	app.Static("/static", "./web/static")

	// --- Routes ---
	handlers.NewCatalogHandler(productService, store).RegisterRoutes(app)
	handlers.NewAuthHandler(authService, store).RegisterRoutes(app)
	handlers.NewProductHandler(productService, uploadService, store).RegisterRoutes(app)
	handlers.NewUserAPIHandler(authService).RegisterRoutes(app)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens the configured database. Unique-constraint violations
// must surface as gorm.ErrDuplicatedKey, so TranslateError stays on.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.PostgresDSN()), gormCfg)
	default:
		return gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	}
}
