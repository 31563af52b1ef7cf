// Package generator fabricates a hospital's operational dataset as nine
// mutually consistent tables: branches, departments, doctors, patients,
// admissions, procedures, billing, outcomes and daily bed-occupancy
// snapshots. Generation is a single-threaded pipeline in strict dependency
// order, deterministic for a fixed seed.
package generator

import (
	"time"

	"hospital-analytics-backend/internal/models"

	"github.com/google/uuid"
)

// Config controls the volume and time range of a generation run.
type Config struct {
	Seed           int64
	PatientCount   int
	AdmissionCount int
	StartDate      time.Time
	EndDate        time.Time
}

// DefaultConfig returns the standard demo dataset shape.
func DefaultConfig() Config {
	return Config{
		Seed:           42,
		PatientCount:   3000,
		AdmissionCount: 3000,
		StartDate:      time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Result summarizes one generation run.
type Result struct {
	RunID        string        `json:"run_id"`
	Seed         int64         `json:"seed"`
	Branches     int           `json:"branches"`
	Departments  int           `json:"departments"`
	Doctors      int           `json:"doctors"`
	Patients     int           `json:"patients"`
	Admissions   int           `json:"admissions"`
	Readmissions int           `json:"readmissions"`
	Procedures   int           `json:"procedures"`
	Billing      int           `json:"billing"`
	Outcomes     int           `json:"outcomes"`
	Snapshots    int           `json:"snapshots"`
	Duration     time.Duration `json:"duration"`
}

// Generator produces a deterministic synthetic dataset.
type Generator struct {
	cfg Config
	s   *sampler
}

// New returns a Generator for the given config. If Seed is 0 a time-based
// seed is chosen.
func New(cfg Config) *Generator {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Generator{cfg: cfg, s: newSampler(cfg.Seed)}
}

// Generate runs all stages in dependency order and returns the dataset with
// a run summary. The only error conditions are structural reference-data
// faults surfaced by the admission stage; they abort the run.
func (g *Generator) Generate() (*models.Dataset, *Result, error) {
	start := time.Now()

	branches := g.buildBranches()
	departments := g.buildDepartments(branches)
	doctors := g.buildDoctors(departments)
	patients := g.buildPatients()

	admissions, err := g.buildAdmissions(branches, departments, doctors, patients)
	if err != nil {
		return nil, nil, err
	}
	admissions = flagReadmissions(admissions)

	procedures := g.buildProcedures(admissions)
	billing := g.buildBilling(admissions, procedures, patients)
	outcomes := g.buildOutcomes(admissions, patients)
	occupancy := g.buildBedOccupancy(departments, admissions)

	ds := &models.Dataset{
		Branches:     branches,
		Departments:  departments,
		Doctors:      doctors,
		Patients:     patients,
		Admissions:   admissions,
		Procedures:   procedures,
		Billing:      billing,
		Outcomes:     outcomes,
		BedOccupancy: occupancy,
	}

	readmissions := 0
	for _, a := range admissions {
		readmissions += a.IsReadmission
	}

	res := &Result{
		RunID:        uuid.NewString(),
		Seed:         g.cfg.Seed,
		Branches:     len(branches),
		Departments:  len(departments),
		Doctors:      len(doctors),
		Patients:     len(patients),
		Admissions:   len(admissions),
		Readmissions: readmissions,
		Procedures:   len(procedures),
		Billing:      len(billing),
		Outcomes:     len(outcomes),
		Snapshots:    len(occupancy),
		Duration:     time.Since(start),
	}
	return ds, res, nil
}
