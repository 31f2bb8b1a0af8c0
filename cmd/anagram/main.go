package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hansifer/anagram-server/internal/app"
	"github.com/hansifer/anagram-server/internal/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	fmt.Println("Anagram Index")
	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context that listens for the interrupt signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the application
	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Run the application
	report, err := application.Run(ctx)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	// Output the report as JSON
	var output []byte
	if cfg.Output.PrettyPrint {
		output, err = json.MarshalIndent(report, "", "    ")
	} else {
		output, err = json.Marshal(report)
	}
	if err != nil {
		log.Fatalf("Failed to marshal report: %v", err)
	}

	fmt.Println(string(output))
}
