package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/zzpboek/zzptax/internal/config"
	"github.com/zzpboek/zzptax/internal/logger"
)

func main() {
	// A missing .env file is normal; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load configuration: %v", err)
		cfg = defaultConfig()
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	} else if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		l := logger.WithComponent("cmd")
		l.Debug().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultConfig() *config.Config {
	lc := logger.DefaultConfig()
	return &config.Config{
		DefaultFormat: "console",
		LogLevel:      lc.Level,
		LogFormat:     lc.Format,
		LogTimeFormat: lc.TimeFormat,
		LogOutput:     lc.Output,
	}
}
