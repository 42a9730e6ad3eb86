package main

import (
	"flag"
	"log"

	"wikiquiz/internal/config"
	"wikiquiz/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	migrationsPath := flag.String("path", "database/migrations", "path to migration files")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, *migrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")
}
