// Command main runs the database seeder for fitlog.
package main

import (
	"flag"
	"log"

	"fitlog/internal/config"
	"fitlog/internal/database"
	"fitlog/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 30, "Number of users to create")
	numExercises := flag.Int("exercises", 40, "Number of catalog exercises to create")
	numRoutines := flag.Int("routines", 50, "Number of routines to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:     *numUsers,
		NumExercises: *numExercises,
		NumRoutines:  *numRoutines,
		ShouldClean:  *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
