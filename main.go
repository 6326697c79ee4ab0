package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sam44cordeiro/backend-financeiro/internal/api"
	"github.com/sam44cordeiro/backend-financeiro/internal/db"
	"github.com/sam44cordeiro/backend-financeiro/internal/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file loaded", zap.Error(err))
	}

	database, err := db.InitDB()
	if err != nil {
		logger.Fatal("Error initializing database", zap.Error(err))
	}
	defer database.Close()

	server := api.NewServer(store.NewUserStore(database), store.NewTransactionStore(database), logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	logger.Info("Server starting", zap.String("port", port))
	if err := server.Start(":" + port); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
