// Package main provides a CLI tool to create an admin user for the dashboard.
// Usage: go run cmd/seed-admin/main.go -email "admin@example.com" -password "..."
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/designladder/designladder_backend/internal/models"
	"github.com/designladder/designladder_backend/internal/services"
)

func main() {
	// Define command line flags
	email := flag.String("email", "", "Admin user email (required)")
	name := flag.String("name", "", "Admin user display name (optional)")
	password := flag.String("password", "", "Admin password (required)")
	envFile := flag.String("env", "", "Path to .env file (defaults to .env in current dir)")
	skipBreachCheck := flag.Bool("skip-breach-check", false, "Skip the Have I Been Pwned lookup (offline use)")
	dryRun := flag.Bool("dry-run", false, "Print what would be created without writing to database")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Creates an admin user in the Design Ladder database.\n\n")
		fmt.Fprintf(os.Stderr, "Configuration is loaded from .env file and/or environment variables.\n")
		fmt.Fprintf(os.Stderr, "Environment variables take precedence over .env file values.\n\n")
		fmt.Fprintf(os.Stderr, "Required config (via .env or environment):\n")
		fmt.Fprintf(os.Stderr, "  DESIGNLADDER_DATABASE_URI   MongoDB connection URI\n")
		fmt.Fprintf(os.Stderr, "  DESIGNLADDER_DATABASE_NAME  Database name (default: designladder)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -email \"admin@example.com\" -password \"...\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -email \"admin@example.com\" -password \"...\" -dry-run\n", os.Args[0])
	}

	flag.Parse()

	// Load .env file
	loadEnvFile(*envFile)

	// Validate required flags
	if *email == "" {
		log.Fatal("Error: -email is required")
	}
	if *password == "" {
		log.Fatal("Error: -password is required")
	}

	// Validate email format
	if !isValidEmail(*email) {
		log.Fatalf("Error: invalid email format: %s", *email)
	}

	// Enforce the password policy before anything touches the database
	if issues := services.CheckPasswordStrength(*password); len(issues) > 0 {
		fmt.Fprintln(os.Stderr, "Error: password rejected:")
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "  - %s\n", issue)
		}
		os.Exit(1)
	}

	if !*skipBreachCheck {
		checker := services.NewHIBPBreachChecker()
		checkCtx, checkCancel := context.WithTimeout(context.Background(), 15*time.Second)
		count, err := checker.PwnedCount(checkCtx, *password)
		checkCancel()
		if err != nil {
			log.Fatalf("Error: breach check failed (use -skip-breach-check to bypass): %v", err)
		}
		if count > 0 {
			log.Fatalf("Error: password appears in %d known breaches, choose another", count)
		}
	}

	hash, err := services.HashPassword(*password)
	if err != nil {
		log.Fatalf("Error: failed to hash password: %v", err)
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

	// Stored lowercase so login lookups are case-insensitive
	user := &models.AdminUser{
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		Name:         *name,
		PasswordHash: hash,
		IsActive:     true,
	}
	user.BeforeCreate()

	// Print what will be created
	fmt.Println("=== Admin User ===")
	fmt.Printf("  ID:    %s\n", user.ID.Hex())
	fmt.Printf("  Email: %s\n", user.Email)
	fmt.Printf("  Name:  %s\n", user.Name)
	fmt.Println()

	if *dryRun {
		fmt.Println("[DRY RUN] No changes made to database")
		return
	}

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(dbURI)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if disconnectErr := client.Disconnect(ctx); disconnectErr != nil {
			log.Printf("Error disconnecting from MongoDB: %v", disconnectErr)
		}
	}()

	// Ping database
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	db := client.Database(dbName)

	// Check if user with same email already exists
	userCollection := db.Collection(models.AdminUser{}.CollectionName())
	var existingUser models.AdminUser
	err = userCollection.FindOne(ctx, bson.M{"email": user.Email}).Decode(&existingUser)
	if err == nil {
		log.Fatalf("Error: admin user with email '%s' already exists (ID: %s)", user.Email, existingUser.ID.Hex())
	} else if err != mongo.ErrNoDocuments {
		log.Fatalf("Error checking existing user: %v", err)
	}

	// Insert user
	if _, err = userCollection.InsertOne(ctx, user); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	fmt.Printf("✓ Created admin user: %s (%s)\n", user.Email, user.ID.Hex())

	fmt.Println()
	fmt.Printf("The admin can now log in at the dashboard using: %s\n", user.Email)
}

// isValidEmail performs basic email validation
func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
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
