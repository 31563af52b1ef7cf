package csvio

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hospital-analytics-backend/internal/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDatasetRoundTrip(t *testing.T) {
	ds, _, err := generator.New(generator.Config{
		Seed:           11,
		PatientCount:   60,
		AdmissionCount: 80,
		StartDate:      time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
	}).Generate()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, WriteDataset(dir, ds))

	branches, err := ReadBranches(filepath.Join(dir, BranchesFile))
	require.NoError(t, err)
	require.Equal(t, ds.Branches, branches)

	departments, err := ReadDepartments(filepath.Join(dir, DepartmentsFile))
	require.NoError(t, err)
	require.Equal(t, ds.Departments, departments)

	doctors, err := ReadDoctors(filepath.Join(dir, DoctorsFile))
	require.NoError(t, err)
	require.Equal(t, ds.Doctors, doctors)

	patients, err := ReadPatients(filepath.Join(dir, PatientsFile))
	require.NoError(t, err)
	require.Equal(t, ds.Patients, patients)

	admissions, err := ReadAdmissions(filepath.Join(dir, AdmissionsFile))
	require.NoError(t, err)
	require.Equal(t, ds.Admissions, admissions)

	procedures, err := ReadProcedures(filepath.Join(dir, ProceduresFile))
	require.NoError(t, err)
	require.Equal(t, ds.Procedures, procedures)

	billing, err := ReadBilling(filepath.Join(dir, BillingFile))
	require.NoError(t, err)
	require.Equal(t, ds.Billing, billing)

	outcomes, err := ReadOutcomes(filepath.Join(dir, OutcomesFile))
	require.NoError(t, err)
	require.Equal(t, ds.Outcomes, outcomes)

	occupancy, err := ReadBedOccupancy(filepath.Join(dir, BedOccupancyFile))
	require.NoError(t, err)
	require.Equal(t, ds.BedOccupancy, occupancy)
}

func firstLine(t *testing.T, path string) string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	sc := bufio.NewScanner(f)
	require.True(t, sc.Scan())
	return sc.Text()
}

func TestWriteDatasetHeaderContract(t *testing.T) {
	ds, _, err := generator.New(generator.Config{
		Seed:           3,
		PatientCount:   10,
		AdmissionCount: 10,
		StartDate:      time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC),
	}).Generate()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, WriteDataset(dir, ds))

	headers := map[string]string{
		BranchesFile:     "branch_id,branch_name,city,total_beds",
		DepartmentsFile:  "department_id,department_name,branch_id,total_beds",
		DoctorsFile:      "doctor_id,doctor_name,department_id,department_name,available_hours,booked_hours",
		PatientsFile:     "patient_id,patient_name,age,gender,insurance_type",
		AdmissionsFile:   "admission_id,patient_id,department_id,department_name,branch_id,doctor_id,admission_datetime,discharge_datetime,admission_type,length_of_stay,is_readmission",
		ProceduresFile:   "procedure_id,admission_id,doctor_id,procedure_type,procedure_datetime,duration_minutes",
		BillingFile:      "admission_id,room_cost,procedure_cost,medicine_cost,diagnostic_cost,total_cost,insurance_covered,patient_paid",
		OutcomesFile:     "admission_id,outcome",
		BedOccupancyFile: "snapshot_id,department_id,department_name,branch_id,snapshot_datetime,occupied_beds,total_beds,occupancy_rate",
	}
	for file, want := range headers {
		assert.Equal(t, want, firstLine(t, filepath.Join(dir, file)), file)
	}
}

func TestReadMissingFileFails(t *testing.T) {
	_, err := ReadBranches(filepath.Join(t.TempDir(), BranchesFile))
	require.Error(t, err)
}

func TestReadRejectsWrongColumnCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, BranchesFile)
	content := "branch_id,branch_name,city,total_beds\n1,Chennai Main,Chennai\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadBranches(path)
	require.Error(t, err)
}

func TestReadReportsRowOfBadValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, BranchesFile)
	content := "branch_id,branch_name,city,total_beds\n1,Chennai Main,Chennai,250\nx,Bangalore North,Bangalore,200\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadBranches(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}
