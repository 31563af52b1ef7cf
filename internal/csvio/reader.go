package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"hospital-analytics-backend/internal/models"
)

// readCSV reads a CSV file, validates the field count against the header,
// and returns the data rows.
func readCSV(path string, wantCols int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = wantCols

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: missing header row", path)
	}
	return records[1:], nil
}

// rowParser accumulates the first parse error across a row so each field
// access stays a one-liner.
type rowParser struct {
	row []string
	err error
}

func (p *rowParser) id(i int) uint {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseUint(p.row[i], 10, 32)
	if err != nil {
		p.err = fmt.Errorf("column %d: %w", i, err)
	}
	return uint(v)
}

func (p *rowParser) int(i int) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(p.row[i])
	if err != nil {
		p.err = fmt.Errorf("column %d: %w", i, err)
	}
	return v
}

func (p *rowParser) float(i int) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(p.row[i], 64)
	if err != nil {
		p.err = fmt.Errorf("column %d: %w", i, err)
	}
	return v
}

func (p *rowParser) time(i int) time.Time {
	if p.err != nil {
		return time.Time{}
	}
	v, err := time.ParseInLocation(TimeLayout, p.row[i], time.UTC)
	if err != nil {
		p.err = fmt.Errorf("column %d: %w", i, err)
	}
	return v
}

func (p *rowParser) str(i int) string { return p.row[i] }

// parseRows runs parse over every data row of path, wrapping errors with the
// row number.
func parseRows[T any](path string, wantCols int, parse func(*rowParser) T) ([]T, error) {
	rows, err := readCSV(path, wantCols)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for n, row := range rows {
		p := &rowParser{row: row}
		v := parse(p)
		if p.err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, n+2, p.err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadBranches parses a branches CSV file.
func ReadBranches(path string) ([]models.Branch, error) {
	return parseRows(path, 4, func(p *rowParser) models.Branch {
		return models.Branch{BranchID: p.id(0), BranchName: p.str(1), City: p.str(2), TotalBeds: p.int(3)}
	})
}

// ReadDepartments parses a departments CSV file.
func ReadDepartments(path string) ([]models.Department, error) {
	return parseRows(path, 4, func(p *rowParser) models.Department {
		return models.Department{DepartmentID: p.id(0), DepartmentName: p.str(1), BranchID: p.id(2), TotalBeds: p.int(3)}
	})
}

// ReadDoctors parses a doctors CSV file.
func ReadDoctors(path string) ([]models.Doctor, error) {
	return parseRows(path, 6, func(p *rowParser) models.Doctor {
		return models.Doctor{
			DoctorID: p.id(0), DoctorName: p.str(1), DepartmentID: p.id(2),
			DepartmentName: p.str(3), AvailableHours: p.int(4), BookedHours: p.int(5),
		}
	})
}

// ReadPatients parses a patients CSV file.
func ReadPatients(path string) ([]models.Patient, error) {
	return parseRows(path, 5, func(p *rowParser) models.Patient {
		return models.Patient{
			PatientID: p.id(0), PatientName: p.str(1), Age: p.int(2),
			Gender: p.str(3), InsuranceType: p.str(4),
		}
	})
}

// ReadAdmissions parses an admissions CSV file.
func ReadAdmissions(path string) ([]models.Admission, error) {
	return parseRows(path, 11, func(p *rowParser) models.Admission {
		return models.Admission{
			AdmissionID: p.id(0), PatientID: p.id(1), DepartmentID: p.id(2),
			DepartmentName: p.str(3), BranchID: p.id(4), DoctorID: p.id(5),
			AdmissionDatetime: p.time(6), DischargeDatetime: p.time(7),
			AdmissionType: p.str(8), LengthOfStay: p.int(9), IsReadmission: p.int(10),
		}
	})
}

// ReadProcedures parses a procedures CSV file.
func ReadProcedures(path string) ([]models.Procedure, error) {
	return parseRows(path, 6, func(p *rowParser) models.Procedure {
		return models.Procedure{
			ProcedureID: p.id(0), AdmissionID: p.id(1), DoctorID: p.id(2),
			ProcedureType: p.str(3), ProcedureDatetime: p.time(4), DurationMinutes: p.int(5),
		}
	})
}

// ReadBilling parses a billing CSV file.
func ReadBilling(path string) ([]models.Billing, error) {
	return parseRows(path, 8, func(p *rowParser) models.Billing {
		return models.Billing{
			AdmissionID: p.id(0), RoomCost: p.int(1), ProcedureCost: p.int(2),
			MedicineCost: p.int(3), DiagnosticCost: p.int(4), TotalCost: p.int(5),
			InsuranceCovered: p.float(6), PatientPaid: p.float(7),
		}
	})
}

// ReadOutcomes parses an outcomes CSV file.
func ReadOutcomes(path string) ([]models.Outcome, error) {
	return parseRows(path, 2, func(p *rowParser) models.Outcome {
		return models.Outcome{AdmissionID: p.id(0), Outcome: p.str(1)}
	})
}

// ReadBedOccupancy parses a bed_occupancy CSV file.
func ReadBedOccupancy(path string) ([]models.BedOccupancy, error) {
	return parseRows(path, 8, func(p *rowParser) models.BedOccupancy {
		return models.BedOccupancy{
			SnapshotID: p.id(0), DepartmentID: p.id(1), DepartmentName: p.str(2),
			BranchID: p.id(3), SnapshotDatetime: p.time(4), OccupiedBeds: p.int(5),
			TotalBeds: p.int(6), OccupancyRate: p.float(7),
		}
	})
}
