package main

import (
	"outreachai_backend/internal/app"
	"outreachai_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("application failed", "error", err)
	}
}
