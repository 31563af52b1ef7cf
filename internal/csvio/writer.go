// Package csvio writes and reads the nine generated tables as CSV files.
// Column names, ordering and formats are the contract consumed by the ETL
// loader and any external tooling; they must not drift.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"hospital-analytics-backend/internal/models"
)

// TimeLayout is the datetime format used in every CSV column.
const TimeLayout = "2006-01-02 15:04:05"

// Table file names, in load order.
const (
	BranchesFile     = "branches.csv"
	DepartmentsFile  = "departments.csv"
	DoctorsFile      = "doctors.csv"
	PatientsFile     = "patients.csv"
	AdmissionsFile   = "admissions.csv"
	ProceduresFile   = "procedures.csv"
	BillingFile      = "billing.csv"
	OutcomesFile     = "outcomes.csv"
	BedOccupancyFile = "bed_occupancy.csv"
)

// WriteDataset writes all nine tables into dir, creating it if needed.
func WriteDataset(dir string, ds *models.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create csv dir: %w", err)
	}

	writers := []struct {
		file  string
		write func(string) error
	}{
		{BranchesFile, func(p string) error { return writeBranches(p, ds.Branches) }},
		{DepartmentsFile, func(p string) error { return writeDepartments(p, ds.Departments) }},
		{DoctorsFile, func(p string) error { return writeDoctors(p, ds.Doctors) }},
		{PatientsFile, func(p string) error { return writePatients(p, ds.Patients) }},
		{AdmissionsFile, func(p string) error { return writeAdmissions(p, ds.Admissions) }},
		{ProceduresFile, func(p string) error { return writeProcedures(p, ds.Procedures) }},
		{BillingFile, func(p string) error { return writeBilling(p, ds.Billing) }},
		{OutcomesFile, func(p string) error { return writeOutcomes(p, ds.Outcomes) }},
		{BedOccupancyFile, func(p string) error { return writeBedOccupancy(p, ds.BedOccupancy) }},
	}
	for _, w := range writers {
		if err := w.write(filepath.Join(dir, w.file)); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

func itoa(v uint) string      { return strconv.FormatUint(uint64(v), 10) }
func ftoa(v float64) string   { return strconv.FormatFloat(v, 'f', 2, 64) }
func ttoa(t time.Time) string { return t.Format(TimeLayout) }

func writeBranches(path string, rows []models.Branch) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{itoa(r.BranchID), r.BranchName, r.City, strconv.Itoa(r.TotalBeds)})
	}
	return writeCSV(path, []string{"branch_id", "branch_name", "city", "total_beds"}, out)
}

func writeDepartments(path string, rows []models.Department) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{itoa(r.DepartmentID), r.DepartmentName, itoa(r.BranchID), strconv.Itoa(r.TotalBeds)})
	}
	return writeCSV(path, []string{"department_id", "department_name", "branch_id", "total_beds"}, out)
}

func writeDoctors(path string, rows []models.Doctor) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			itoa(r.DoctorID), r.DoctorName, itoa(r.DepartmentID), r.DepartmentName,
			strconv.Itoa(r.AvailableHours), strconv.Itoa(r.BookedHours),
		})
	}
	return writeCSV(path, []string{"doctor_id", "doctor_name", "department_id", "department_name", "available_hours", "booked_hours"}, out)
}

func writePatients(path string, rows []models.Patient) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{itoa(r.PatientID), r.PatientName, strconv.Itoa(r.Age), r.Gender, r.InsuranceType})
	}
	return writeCSV(path, []string{"patient_id", "patient_name", "age", "gender", "insurance_type"}, out)
}

func writeAdmissions(path string, rows []models.Admission) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			itoa(r.AdmissionID), itoa(r.PatientID), itoa(r.DepartmentID), r.DepartmentName,
			itoa(r.BranchID), itoa(r.DoctorID), ttoa(r.AdmissionDatetime), ttoa(r.DischargeDatetime),
			r.AdmissionType, strconv.Itoa(r.LengthOfStay), strconv.Itoa(r.IsReadmission),
		})
	}
	return writeCSV(path, []string{
		"admission_id", "patient_id", "department_id", "department_name", "branch_id",
		"doctor_id", "admission_datetime", "discharge_datetime", "admission_type",
		"length_of_stay", "is_readmission",
	}, out)
}

func writeProcedures(path string, rows []models.Procedure) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			itoa(r.ProcedureID), itoa(r.AdmissionID), itoa(r.DoctorID),
			r.ProcedureType, ttoa(r.ProcedureDatetime), strconv.Itoa(r.DurationMinutes),
		})
	}
	return writeCSV(path, []string{"procedure_id", "admission_id", "doctor_id", "procedure_type", "procedure_datetime", "duration_minutes"}, out)
}

func writeBilling(path string, rows []models.Billing) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			itoa(r.AdmissionID), strconv.Itoa(r.RoomCost), strconv.Itoa(r.ProcedureCost),
			strconv.Itoa(r.MedicineCost), strconv.Itoa(r.DiagnosticCost), strconv.Itoa(r.TotalCost),
			ftoa(r.InsuranceCovered), ftoa(r.PatientPaid),
		})
	}
	return writeCSV(path, []string{
		"admission_id", "room_cost", "procedure_cost", "medicine_cost",
		"diagnostic_cost", "total_cost", "insurance_covered", "patient_paid",
	}, out)
}

func writeOutcomes(path string, rows []models.Outcome) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{itoa(r.AdmissionID), r.Outcome})
	}
	return writeCSV(path, []string{"admission_id", "outcome"}, out)
}

func writeBedOccupancy(path string, rows []models.BedOccupancy) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			itoa(r.SnapshotID), itoa(r.DepartmentID), r.DepartmentName, itoa(r.BranchID),
			ttoa(r.SnapshotDatetime), strconv.Itoa(r.OccupiedBeds), strconv.Itoa(r.TotalBeds),
			ftoa(r.OccupancyRate),
		})
	}
	return writeCSV(path, []string{
		"snapshot_id", "department_id", "department_name", "branch_id",
		"snapshot_datetime", "occupied_beds", "total_beds", "occupancy_rate",
	}, out)
}
