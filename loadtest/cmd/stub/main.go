package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mealping/mealping-coaching-core/loadtest/internal/stub"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}

	storage := stub.NewSeedStorage()
	handler := stub.NewHandler(storage)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	handler.Register(r)

	slog.Info("starting upstream stub", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		slog.Error("stub server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
