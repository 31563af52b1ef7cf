package generator

import (
	"testing"
	"time"

	"hospital-analytics-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Seed:           7,
		PatientCount:   400,
		AdmissionCount: 500,
		StartDate:      time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
	}
}

func generate(t *testing.T, cfg Config) (*models.Dataset, *Result) {
	t.Helper()
	ds, res, err := New(cfg).Generate()
	require.NoError(t, err)
	return ds, res
}

func TestGenerateTableShapes(t *testing.T) {
	cfg := testConfig()
	ds, res := generate(t, cfg)

	assert.Len(t, ds.Branches, 3)
	assert.Len(t, ds.Departments, 18)
	assert.Len(t, ds.Patients, cfg.PatientCount)
	assert.Len(t, ds.Admissions, cfg.AdmissionCount)
	assert.Len(t, ds.Billing, cfg.AdmissionCount)
	assert.Len(t, ds.Outcomes, cfg.AdmissionCount)

	// 3-5 doctors per department
	assert.GreaterOrEqual(t, len(ds.Doctors), 18*3)
	assert.LessOrEqual(t, len(ds.Doctors), 18*5)

	// one snapshot per department per calendar day, inclusive range
	days := 92 // Aug + Sep + Oct 2025
	assert.Len(t, ds.BedOccupancy, days*18)

	assert.Equal(t, len(ds.Admissions), res.Admissions)
	assert.Equal(t, len(ds.Procedures), res.Procedures)
	assert.NotEmpty(t, res.RunID)
}

func TestGenerateDepartmentBedAllocation(t *testing.T) {
	ds, _ := generate(t, testConfig())

	beds := make(map[deptKey]int)
	for _, d := range ds.Departments {
		beds[deptKey{d.DepartmentName, d.BranchID}] = d.TotalBeds
	}
	// Chennai Main has 250 beds: Emergency 25% -> 62, Cardiology 15% -> 37.
	assert.Equal(t, 62, beds[deptKey{"Emergency", 1}])
	assert.Equal(t, 37, beds[deptKey{"Cardiology", 1}])
	// Hyderabad Central has 180 beds: Oncology 8% -> 14.
	assert.Equal(t, 14, beds[deptKey{"Oncology", 3}])
}

func TestGenerateDoctorHoursBounded(t *testing.T) {
	ds, _ := generate(t, testConfig())
	for _, doc := range ds.Doctors {
		assert.Equal(t, 160, doc.AvailableHours)
		assert.GreaterOrEqual(t, doc.BookedHours, 0)
		assert.LessOrEqual(t, doc.BookedHours, doc.AvailableHours)
	}
}

func TestGeneratePatientDemographics(t *testing.T) {
	ds, _ := generate(t, testConfig())
	for i, p := range ds.Patients {
		assert.Equal(t, uint(i+1), p.PatientID)
		assert.GreaterOrEqual(t, p.Age, 0)
		assert.LessOrEqual(t, p.Age, 95)
		assert.Contains(t, []string{"Male", "Female"}, p.Gender)
		assert.Contains(t, []string{"Government", "Private", "Self-Pay"}, p.InsuranceType)
	}
}

func TestGenerateReferentialIntegrity(t *testing.T) {
	ds, _ := generate(t, testConfig())

	branches := make(map[uint]bool)
	for _, b := range ds.Branches {
		branches[b.BranchID] = true
	}
	departments := make(map[uint]models.Department)
	for _, d := range ds.Departments {
		departments[d.DepartmentID] = d
	}
	doctors := make(map[uint]models.Doctor)
	for _, d := range ds.Doctors {
		doctors[d.DoctorID] = d
	}
	patients := make(map[uint]models.Patient)
	for _, p := range ds.Patients {
		patients[p.PatientID] = p
	}

	for _, a := range ds.Admissions {
		require.True(t, branches[a.BranchID], "admission %d: unknown branch", a.AdmissionID)
		dept, ok := departments[a.DepartmentID]
		require.True(t, ok, "admission %d: unknown department", a.AdmissionID)
		assert.Equal(t, a.DepartmentName, dept.DepartmentName)
		assert.Equal(t, a.BranchID, dept.BranchID)

		doc, ok := doctors[a.DoctorID]
		require.True(t, ok, "admission %d: unknown doctor", a.AdmissionID)
		assert.Equal(t, a.DepartmentID, doc.DepartmentID, "admission %d: doctor from another department", a.AdmissionID)

		_, ok = patients[a.PatientID]
		require.True(t, ok, "admission %d: unknown patient", a.AdmissionID)
	}
}

func TestGenerateTemporalOrdering(t *testing.T) {
	ds, _ := generate(t, testConfig())
	for _, a := range ds.Admissions {
		assert.True(t, a.DischargeDatetime.After(a.AdmissionDatetime), "admission %d", a.AdmissionID)

		stay := a.DischargeDatetime.Sub(a.AdmissionDatetime)
		min := time.Duration(a.LengthOfStay)*24*time.Hour + 8*time.Hour
		max := time.Duration(a.LengthOfStay)*24*time.Hour + 16*time.Hour
		assert.GreaterOrEqual(t, stay, min, "admission %d", a.AdmissionID)
		assert.LessOrEqual(t, stay, max, "admission %d", a.AdmissionID)
	}
}

func TestGenerateChildrenGoToPediatrics(t *testing.T) {
	ds, _ := generate(t, testConfig())
	ages := make(map[uint]int)
	for _, p := range ds.Patients {
		ages[p.PatientID] = p.Age
	}
	for _, a := range ds.Admissions {
		if ages[a.PatientID] < 15 {
			assert.Equal(t, "Pediatrics", a.DepartmentName, "admission %d: age %d", a.AdmissionID, ages[a.PatientID])
		}
	}
}

func TestGenerateScheduledHoursBusinessWindow(t *testing.T) {
	ds, _ := generate(t, testConfig())
	for _, a := range ds.Admissions {
		if a.AdmissionType == "Scheduled" {
			h := a.AdmissionDatetime.Hour()
			assert.GreaterOrEqual(t, h, 8, "admission %d", a.AdmissionID)
			assert.LessOrEqual(t, h, 16, "admission %d", a.AdmissionID)
		}
	}
}

func TestGenerateProceduresWithinStay(t *testing.T) {
	ds, _ := generate(t, testConfig())

	admissions := make(map[uint]models.Admission)
	for _, a := range ds.Admissions {
		admissions[a.AdmissionID] = a
	}

	counts := make(map[uint]int)
	var lastID uint
	for _, p := range ds.Procedures {
		assert.Equal(t, lastID+1, p.ProcedureID, "procedure ids must be sequential")
		lastID = p.ProcedureID

		adm, ok := admissions[p.AdmissionID]
		require.True(t, ok, "procedure %d: unknown admission", p.ProcedureID)
		counts[p.AdmissionID]++

		assert.Equal(t, adm.DoctorID, p.DoctorID)
		assert.False(t, p.ProcedureDatetime.Before(adm.AdmissionDatetime), "procedure %d before admission", p.ProcedureID)
		assert.True(t, p.ProcedureDatetime.Before(adm.DischargeDatetime), "procedure %d after discharge", p.ProcedureID)
		assert.Contains(t, procedureTypes[adm.DepartmentName], p.ProcedureType)
		assert.GreaterOrEqual(t, p.DurationMinutes, 30)
		assert.LessOrEqual(t, p.DurationMinutes, 240)
	}

	for _, a := range ds.Admissions {
		n := counts[a.AdmissionID]
		switch a.DepartmentName {
		case "Oncology":
			assert.GreaterOrEqual(t, n, 2)
			assert.LessOrEqual(t, n, 5)
		case "Cardiology":
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, 3)
		default:
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, 2)
		}
	}
}

func TestGenerateBillingIdentity(t *testing.T) {
	ds, _ := generate(t, testConfig())

	insurance := make(map[uint]string)
	for _, p := range ds.Patients {
		insurance[p.PatientID] = p.InsuranceType
	}
	patientByAdmission := make(map[uint]uint)
	for _, a := range ds.Admissions {
		patientByAdmission[a.AdmissionID] = a.PatientID
	}

	for _, b := range ds.Billing {
		assert.Equal(t, b.TotalCost, b.RoomCost+b.ProcedureCost+b.MedicineCost+b.DiagnosticCost, "admission %d", b.AdmissionID)
		assert.InDelta(t, float64(b.TotalCost)-b.InsuranceCovered, b.PatientPaid, 0.011, "admission %d", b.AdmissionID)

		if insurance[patientByAdmission[b.AdmissionID]] == "Self-Pay" {
			assert.Zero(t, b.InsuranceCovered, "admission %d: Self-Pay must not be covered", b.AdmissionID)
			assert.Equal(t, float64(b.TotalCost), b.PatientPaid, "admission %d", b.AdmissionID)
		} else {
			assert.GreaterOrEqual(t, b.InsuranceCovered, 0.0)
			assert.LessOrEqual(t, b.InsuranceCovered, float64(b.TotalCost))
		}
	}
}

func TestGenerateOutcomesComplete(t *testing.T) {
	ds, _ := generate(t, testConfig())

	seen := make(map[uint]bool)
	for _, o := range ds.Outcomes {
		assert.Contains(t, outcomeNames, o.Outcome)
		assert.False(t, seen[o.AdmissionID], "duplicate outcome for admission %d", o.AdmissionID)
		seen[o.AdmissionID] = true
	}
	assert.Len(t, seen, len(ds.Admissions))
}

func TestGenerateOccupancyBounds(t *testing.T) {
	ds, _ := generate(t, testConfig())
	for _, s := range ds.BedOccupancy {
		assert.GreaterOrEqual(t, s.OccupiedBeds, 0)
		assert.LessOrEqual(t, s.OccupiedBeds, s.TotalBeds, "snapshot %d", s.SnapshotID)
		if s.TotalBeds == 0 {
			assert.Zero(t, s.OccupancyRate)
		} else {
			want := round2(float64(s.OccupiedBeds) / float64(s.TotalBeds) * 100)
			assert.Equal(t, want, s.OccupancyRate, "snapshot %d", s.SnapshotID)
		}
		assert.Equal(t, 8, s.SnapshotDatetime.Hour())
	}
}

func TestGenerateDeterministicForFixedSeed(t *testing.T) {
	cfg := testConfig()
	first, _ := generate(t, cfg)
	second, _ := generate(t, cfg)

	require.Equal(t, first.Branches, second.Branches)
	require.Equal(t, first.Departments, second.Departments)
	require.Equal(t, first.Doctors, second.Doctors)
	require.Equal(t, first.Patients, second.Patients)
	require.Equal(t, first.Admissions, second.Admissions)
	require.Equal(t, first.Procedures, second.Procedures)
	require.Equal(t, first.Billing, second.Billing)
	require.Equal(t, first.Outcomes, second.Outcomes)
	require.Equal(t, first.BedOccupancy, second.BedOccupancy)
}

func TestGenerateSeedsDiverge(t *testing.T) {
	cfg := testConfig()
	first, _ := generate(t, cfg)

	cfg.Seed = 8
	second, _ := generate(t, cfg)

	assert.NotEqual(t, first.Admissions, second.Admissions)
}
