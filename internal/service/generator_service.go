package service

import (
	"log"

	"hospital-analytics-backend/internal/csvio"
	"hospital-analytics-backend/internal/generator"
	"hospital-analytics-backend/internal/models"
)

// RunRecorder persists generation run records.
type RunRecorder interface {
	Create(run *models.GenerationRun) error
}

type GeneratorService struct {
	runs RunRecorder
}

// NewGeneratorService creates the service. runs may be nil when no store is
// available (CLI use); runs are then not recorded.
func NewGeneratorService(runs RunRecorder) *GeneratorService {
	return &GeneratorService{runs: runs}
}

// Generate runs the dataset generator, writes the nine CSV files to csvDir
// and records the run.
func (s *GeneratorService) Generate(cfg generator.Config, csvDir string) (*generator.Result, error) {
	gen := generator.New(cfg)
	ds, result, err := gen.Generate()
	if err != nil {
		return nil, err
	}

	if err := csvio.WriteDataset(csvDir, ds); err != nil {
		return nil, err
	}

	if s.runs != nil {
		run := &models.GenerationRun{
			RunID:      result.RunID,
			Seed:       result.Seed,
			Patients:   result.Patients,
			Admissions: result.Admissions,
			Procedures: result.Procedures,
			Snapshots:  result.Snapshots,
			DurationMs: result.Duration.Milliseconds(),
		}
		if err := s.runs.Create(run); err != nil {
			log.Printf("Warning: failed to record generation run %s: %v", result.RunID, err)
		}
	}

	log.Printf("Generated dataset %s: %d admissions (%d readmissions), %d procedures, %d snapshots in %v",
		result.RunID, result.Admissions, result.Readmissions, result.Procedures, result.Snapshots, result.Duration)
	return result, nil
}
