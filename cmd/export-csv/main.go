// Package main provides a CLI tool to export stored submissions as CSV.
// Usage: go run cmd/export-csv/main.go -kind diagnoses -out diagnoses.csv
// This mirrors the admin export endpoints for use without a running server.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/designladder/designladder_backend/internal/database"
	"github.com/designladder/designladder_backend/internal/repository"
	"github.com/designladder/designladder_backend/internal/services"
)

func main() {
	// Define command line flags
	kind := flag.String("kind", "diagnoses", "What to export: diagnoses or challenges")
	out := flag.String("out", "", "Output file path (defaults to stdout)")
	envFile := flag.String("env", "", "Path to .env file (defaults to .env in current dir)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Exports stored Design Ladder submissions as CSV.\n\n")
		fmt.Fprintf(os.Stderr, "Configuration is loaded from .env file and/or environment variables.\n\n")
		fmt.Fprintf(os.Stderr, "Required config (via .env or environment):\n")
		fmt.Fprintf(os.Stderr, "  DESIGNLADDER_DATABASE_URI   MongoDB connection URI\n")
		fmt.Fprintf(os.Stderr, "  DESIGNLADDER_DATABASE_NAME  Database name (default: designladder)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -kind diagnoses -out diagnoses.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -kind challenges\n", os.Args[0])
	}

	flag.Parse()

	// Load .env file
	loadEnvFile(*envFile)

	if *kind != "diagnoses" && *kind != "challenges" {
		log.Fatalf("Error: -kind must be diagnoses or challenges, got %q", *kind)
	}

	// Load database configuration from environment
	dbURI := os.Getenv("DESIGNLADDER_DATABASE_URI")
	if dbURI == "" {
		log.Fatal("Error: DESIGNLADDER_DATABASE_URI environment variable is required")
	}
	dbName := os.Getenv("DESIGNLADDER_DATABASE_NAME")
	if dbName == "" {
		dbName = "designladder"
	}

	dbClient, err := database.NewClient(database.Config{
		URI:                    dbURI,
		Database:               dbName,
		MaxPoolSize:            10,
		MinPoolSize:            1,
		MaxConnIdleTime:        time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 10 * time.Second,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	defer func() {
		if closeErr := dbClient.Close(ctx); closeErr != nil {
			log.Printf("Error disconnecting from MongoDB: %v", closeErr)
		}
	}()

	exportService := services.NewExportService(
		repository.NewDiagnosisRepository(dbClient),
		repository.NewChallengeRepository(dbClient),
	)

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				log.Printf("Error closing output file: %v", closeErr)
			}
		}()
		w = f
	}

	switch *kind {
	case "diagnoses":
		err = exportService.WriteDiagnosesCSV(ctx, w)
	case "challenges":
		err = exportService.WriteChallengesCSV(ctx, w)
	}
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	if *out != "" {
		fmt.Printf("✓ Exported %s to %s\n", *kind, *out)
	}
}

// loadEnvFile loads environment variables from a .env file
func loadEnvFile(path string) {
	if path == "" {
		cwd, _ := os.Getwd()
		if _, err := os.Stat(filepath.Join(cwd, ".env")); err == nil {
			path = ".env"
		}
	}

	if path != "" {
		if err := godotenv.Load(path); err != nil {
			log.Printf("Error loading .env file: %v", err)
		}
	}
}
