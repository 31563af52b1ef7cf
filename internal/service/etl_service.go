package service

import (
	"fmt"
	"os"
	"path/filepath"

	"hospital-analytics-backend/internal/csvio"
	"hospital-analytics-backend/internal/models"
)

// TableReplacer is the storage boundary the loader writes through.
type TableReplacer interface {
	ReplaceTable(model interface{}, rows interface{}, count int) error
}

type ETLService struct {
	repo TableReplacer
}

func NewETLService(repo TableReplacer) *ETLService {
	return &ETLService{repo: repo}
}

func loadTable[T any](s *ETLService, read func(string) ([]T, error), model interface{}) func(string) (int, error) {
	return func(path string) (int, error) {
		rows, err := read(path)
		if err != nil {
			return 0, err
		}
		if err := s.repo.ReplaceTable(model, rows, len(rows)); err != nil {
			return 0, err
		}
		return len(rows), nil
	}
}

// RunLoad reads the nine CSV files from dir and replace-loads each into the
// relational store, in dependency order. A missing file is reported per
// table without failing the others; a load error aborts the run.
func (s *ETLService) RunLoad(dir string) (map[string]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("csv folder not found: %w", err)
	}

	loaders := []struct {
		table string
		file  string
		load  func(string) (int, error)
	}{
		{"branches", csvio.BranchesFile, loadTable(s, csvio.ReadBranches, &models.Branch{})},
		{"departments", csvio.DepartmentsFile, loadTable(s, csvio.ReadDepartments, &models.Department{})},
		{"doctors", csvio.DoctorsFile, loadTable(s, csvio.ReadDoctors, &models.Doctor{})},
		{"patients", csvio.PatientsFile, loadTable(s, csvio.ReadPatients, &models.Patient{})},
		{"admissions", csvio.AdmissionsFile, loadTable(s, csvio.ReadAdmissions, &models.Admission{})},
		{"procedures", csvio.ProceduresFile, loadTable(s, csvio.ReadProcedures, &models.Procedure{})},
		{"billing", csvio.BillingFile, loadTable(s, csvio.ReadBilling, &models.Billing{})},
		{"outcomes", csvio.OutcomesFile, loadTable(s, csvio.ReadOutcomes, &models.Outcome{})},
		{"bed_occupancy", csvio.BedOccupancyFile, loadTable(s, csvio.ReadBedOccupancy, &models.BedOccupancy{})},
	}

	report := make(map[string]string, len(loaders))
	for _, l := range loaders {
		path := filepath.Join(dir, l.file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			report[l.table] = "file missing"
			continue
		}
		count, err := l.load(path)
		if err != nil {
			return report, fmt.Errorf("load %s: %w", l.table, err)
		}
		report[l.table] = fmt.Sprintf("successfully loaded %d rows", count)
	}
	return report, nil
}
