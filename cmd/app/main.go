package main

import (
	"os"
	"os/signal"
	"syscall"

	"GarmentGolang/internal/config"
	"GarmentGolang/pkg/gemini"
	"GarmentGolang/pkg/log"
	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()

	geminiConfig := gemini.Config{
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		FlashModel: os.Getenv("GEMINI_FLASH_MODEL"),
		ProModel:   os.Getenv("GEMINI_PRO_MODEL"),
	}

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithMiddleware(),
		config.WithGeminiClient(geminiConfig),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
