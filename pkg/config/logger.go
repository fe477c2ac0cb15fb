package config

import (
	"log"

	"go.uber.org/zap"
)

var Logger *zap.Logger = zap.NewNop()

// InitLogger replaces the no-op default with a real zap logger. Call once
// at startup, before anything logs.
func InitLogger() {
	var err error
	Logger, err = zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
}
