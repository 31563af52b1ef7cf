package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hospital-analytics-backend/internal/csvio"
	"hospital-analytics-backend/internal/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallGeneratorConfig() generator.Config {
	return generator.Config{
		Seed:           9,
		PatientCount:   15,
		AdmissionCount: 20,
		StartDate:      time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerateWritesCSVFilesAndRecordsRun(t *testing.T) {
	recorder := &mockRunRecorder{}
	dir := filepath.Join(t.TempDir(), "csv_data")

	result, err := NewGeneratorService(recorder).Generate(smallGeneratorConfig(), dir)
	require.NoError(t, err)
	require.NotNil(t, result)

	for _, file := range []string{
		csvio.BranchesFile, csvio.DepartmentsFile, csvio.DoctorsFile,
		csvio.PatientsFile, csvio.AdmissionsFile, csvio.ProceduresFile,
		csvio.BillingFile, csvio.OutcomesFile, csvio.BedOccupancyFile,
	} {
		_, err := os.Stat(filepath.Join(dir, file))
		assert.NoError(t, err, file)
	}

	require.Len(t, recorder.runs, 1)
	run := recorder.runs[0]
	assert.Equal(t, result.RunID, run.RunID)
	assert.Equal(t, int64(9), run.Seed)
	assert.Equal(t, result.Admissions, run.Admissions)
	assert.Equal(t, result.Snapshots, run.Snapshots)
}

func TestGenerateWithoutRecorder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "csv_data")

	result, err := NewGeneratorService(nil).Generate(smallGeneratorConfig(), dir)
	require.NoError(t, err)
	assert.Equal(t, 20, result.Admissions)
}

func TestGenerateSucceedsWhenRunRecordFails(t *testing.T) {
	recorder := &mockRunRecorder{err: errors.New("db down")}
	dir := filepath.Join(t.TempDir(), "csv_data")

	result, err := NewGeneratorService(recorder).Generate(smallGeneratorConfig(), dir)
	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
}

func TestGenerateFailsWhenCSVDirUnwritable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewGeneratorService(nil).Generate(smallGeneratorConfig(), file)
	require.Error(t, err)
}
