package main

import (
	"context"
	"flag"
	"log"
	"time"

	"jobmatch/internal/config"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/database/seeder"
)

func main() {
	jobsPath := flag.String("jobs", "data/jobs.json", "path to the job postings JSON file")
	profilesPath := flag.String("profiles", "", "optional path to a candidate profiles JSON file")
	reset := flag.Bool("reset", false, "erase existing jobs before loading")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	seeders := []seeder.Seeder{
		seeder.SchemaSeeder{},
		seeder.JobsSeeder{Path: *jobsPath, Reset: *reset},
	}
	if *profilesPath != "" {
		seeders = append(seeders, seeder.ProfilesSeeder{Path: *profilesPath})
	}

	if err := (seeder.Runner{Seeders: seeders}).Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Printf("corpus loaded | jobs_file=%s reset=%v", *jobsPath, *reset)
}
