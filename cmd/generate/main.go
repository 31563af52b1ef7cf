// Command generate fabricates the hospital dataset once and writes the nine
// CSV files, without requiring a database.
package main

import (
	"log"

	"hospital-analytics-backend/internal/config"
	"hospital-analytics-backend/internal/generator"
	"hospital-analytics-backend/internal/service"
)

func main() {
	cfg := config.LoadConfig()

	generatorService := service.NewGeneratorService(nil)
	result, err := generatorService.Generate(generator.Config{
		Seed:           cfg.Generator.Seed,
		PatientCount:   cfg.Generator.PatientCount,
		AdmissionCount: cfg.Generator.AdmissionCount,
		StartDate:      cfg.Generator.StartDate,
		EndDate:        cfg.Generator.EndDate,
	}, cfg.Generator.CSVDir)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	log.Printf("CSV files written to %s (run %s, seed %d)", cfg.Generator.CSVDir, result.RunID, result.Seed)
}
