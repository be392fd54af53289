package main

import (
	"fmt"
	"log"

	openaiadapter "mualleem-api/internal/adapter/openai"
	"mualleem-api/internal/adapter/qdrant"
	"mualleem-api/internal/adapter/repository/postgres"
	"mualleem-api/internal/delivery/http/handler"
	"mualleem-api/internal/usecase/curriculum"
	"mualleem-api/internal/usecase/review"
	"mualleem-api/internal/usecase/tutor"
	"mualleem-api/pkg/config"
	"mualleem-api/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	// log
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// initialize requesty/openai clients
	clientCfg := openaiadapter.ClientConfig{
		APIKey:   cfg.RequestyAPIKey,
		BaseURL:  cfg.RequestyBaseURL,
		SiteURL:  cfg.SiteURL,
		SiteName: cfg.SiteName,
		Timeout:  cfg.ClientTimeout,
	}
	embeddingClient := openaiadapter.NewEmbeddingClient(clientCfg, cfg.OpenAIEmbeddingModel)
	chatClient := openaiadapter.NewChatClient(clientCfg, cfg.OpenAIChatModel, cfg.OpenAIVisionModel)

	// initialize vector store
	vectorStore := qdrant.NewStore(qdrant.Config{
		URL:        cfg.QdrantURL,
		APIKey:     cfg.QdrantAPIKey,
		Collection: cfg.QdrantCollection,
		VectorSize: cfg.VectorSize,
		Timeout:    cfg.ClientTimeout,
	})
	log.Printf("Using Qdrant collection %q at %s", cfg.QdrantCollection, cfg.QdrantURL)

	// initialize usecase
	curriculumUsecase := curriculum.NewUsecase(
		vectorStore,
		embeddingClient,
		curriculum.NewTextExtractor(),
		cfg.ChunkSize,
		cfg.ChunkOverlap,
		cfg.EmbeddingBatchSize,
	)
	tutorUsecase := tutor.NewUsecase(vectorStore, embeddingClient, chatClient, cfg.TopKResults)

	// initialize handler
	curriculumHandler := handler.NewCurriculumHandler(curriculumUsecase, cfg.DataDir)
	chatHandler := handler.NewChatHandler(tutorUsecase)

	// initialize fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024,
	})

	// middleware for log request and response in terminal
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigin,
		AllowCredentials: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "مرحباً بك في منصة معلّم التعليمية", "status": "active"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "service": "Mualleem Backend"})
	})

	// curriculum routes
	app.Get("/stats", curriculumHandler.Stats)
	app.Post("/upload-curriculum", curriculumHandler.Upload)
	app.Delete("/curriculum", curriculumHandler.Clear)

	// chat route
	app.Post("/chat", chatHandler.Chat)

	// review routes need postgres; skip them when no database is configured
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Println("connected to database")

		reviewHandler := handler.NewReviewHandler(review.NewUsecase(postgres.NewReviewRepository(db)))
		app.Post("/reviews", reviewHandler.Submit)
		app.Get("/reviews/stats", reviewHandler.Stats)
	} else {
		log.Println("DATABASE_URL not set, review endpoints disabled")
	}

	// Start server
	log.Printf("🚀 Server starting on port %d", cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
