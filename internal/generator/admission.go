package generator

import (
	"fmt"
	"sort"
	"time"

	"hospital-analytics-backend/internal/models"
)

// readmissionWindowDays is the post-discharge window that marks a
// subsequent admission as a readmission.
const readmissionWindowDays = 30

// deptKey identifies a department row within a branch.
type deptKey struct {
	name     string
	branchID uint
}

// usedPatients tracks which patients already have an admission, so later
// draws can be biased toward repeat visits. It is threaded through the
// admission loop rather than held as package state.
type usedPatients struct {
	ids  []uint
	seen map[uint]bool
}

func newUsedPatients() *usedPatients {
	return &usedPatients{seen: make(map[uint]bool)}
}

func (u *usedPatients) add(id uint) {
	if !u.seen[id] {
		u.seen[id] = true
		u.ids = append(u.ids, id)
	}
}

// buildAdmissions derives the admission table: each admission samples a
// patient (with a readmission bias once enough patients are in play), infers
// the department from age, the branch from bed-weighted capacity, the
// admission type from department and weekday, the hour from the type, and
// the length of stay from department rules plus a winter adjustment.
//
// The two error paths are structural reference-data faults: a (department,
// branch) pair with no department row, or a department with no doctors.
// Neither can occur with correctly generated reference and staff tables, but
// an unresolvable admission must abort the run rather than emit a dangling
// foreign key.
func (g *Generator) buildAdmissions(
	branches []models.Branch,
	departments []models.Department,
	doctors []models.Doctor,
	patients []models.Patient,
) ([]models.Admission, error) {
	deptByKey := make(map[deptKey]*models.Department, len(departments))
	for i := range departments {
		d := &departments[i]
		deptByKey[deptKey{d.DepartmentName, d.BranchID}] = d
	}
	doctorsByDept := make(map[uint][]models.Doctor, len(departments))
	for _, doc := range doctors {
		doctorsByDept[doc.DepartmentID] = append(doctorsByDept[doc.DepartmentID], doc)
	}
	patientByID := make(map[uint]models.Patient, len(patients))
	for _, p := range patients {
		patientByID[p.PatientID] = p
	}

	branchWeights := make([]int, len(branches))
	for i, b := range branches {
		branchWeights[i] = b.TotalBeds
	}

	used := newUsedPatients()
	admissions := make([]models.Admission, 0, g.cfg.AdmissionCount)

	for id := 1; id <= g.cfg.AdmissionCount; id++ {
		// Patient selection with a 10% readmission bias once more than
		// 100 distinct patients have been admitted.
		var patient models.Patient
		if len(used.ids) > 100 && g.s.chance(0.10) {
			patient = patientByID[used.ids[g.s.rng.Intn(len(used.ids))]]
		} else {
			patient = patients[g.s.rng.Intn(len(patients))]
			used.add(patient.PatientID)
		}

		dept := g.departmentForAge(patient.Age)
		branch := branches[g.s.weightedIndex(branchWeights)]

		sampled := g.s.timeBetween(g.cfg.StartDate, g.cfg.EndDate)
		weekday := sampled.Weekday()
		isWeekend := weekday == time.Saturday || weekday == time.Sunday

		var emergencyProb float64
		switch {
		case dept == "Emergency":
			emergencyProb = 0.90
		case isWeekend:
			emergencyProb = 0.45
		default:
			emergencyProb = 0.30
		}
		isEmergency := g.s.chance(emergencyProb)

		var hour int
		if isEmergency {
			hour = g.s.weightedIndex(emergencyHourWeights)
		} else {
			hour = g.s.intBetween(8, 16)
		}
		admitTime := time.Date(
			sampled.Year(), sampled.Month(), sampled.Day(),
			hour, g.s.intBetween(0, 59), sampled.Second(), 0, time.UTC,
		)

		los := g.s.intBetween(losRules[dept].Min, losRules[dept].Max)
		// Winter flu season lengthens Emergency and General Medicine stays.
		if (admitTime.Month() == time.December || admitTime.Month() == time.January) &&
			(dept == "Emergency" || dept == "General Medicine") {
			los += g.s.intBetween(0, 2)
		}

		discharge := admitTime.Add(
			time.Duration(los)*24*time.Hour +
				time.Duration(g.s.intBetween(8, 16))*time.Hour,
		)

		deptRow, ok := deptByKey[deptKey{dept, branch.BranchID}]
		if !ok {
			return nil, fmt.Errorf("admission %d: no department %q in branch %d: reference data mismatch", id, dept, branch.BranchID)
		}
		deptDoctors := doctorsByDept[deptRow.DepartmentID]
		if len(deptDoctors) == 0 {
			return nil, fmt.Errorf("admission %d: department %d (%s) has no doctors", id, deptRow.DepartmentID, dept)
		}
		doctor := deptDoctors[g.s.rng.Intn(len(deptDoctors))]

		admissionType := "Scheduled"
		if isEmergency {
			admissionType = "Emergency"
		}

		admissions = append(admissions, models.Admission{
			AdmissionID:       uint(id),
			PatientID:         patient.PatientID,
			DepartmentID:      deptRow.DepartmentID,
			DepartmentName:    dept,
			BranchID:          branch.BranchID,
			DoctorID:          doctor.DoctorID,
			AdmissionDatetime: admitTime,
			DischargeDatetime: discharge,
			AdmissionType:     admissionType,
			LengthOfStay:      los,
			IsReadmission:     0,
		})
	}
	return admissions, nil
}

// departmentForAge assigns a department from patient age. This is a priority
// cascade: only the first matching rule fires.
func (g *Generator) departmentForAge(age int) string {
	switch {
	case age < 15:
		return "Pediatrics"
	case age > 60 && g.s.chance(0.35):
		return g.s.weightedChoice([]string{"Cardiology", "Oncology"}, []int{60, 40})
	case age > 50 && g.s.chance(0.20):
		return "Cardiology"
	default:
		return g.s.pick(departmentNames)
	}
}

// flagReadmissions marks every admission that begins within 30 days of the
// same patient's previous discharge. It returns a new slice in the original
// admission-id order; the input is not mutated. Cross-patient order is
// irrelevant: the scan is per patient timeline.
func flagReadmissions(admissions []models.Admission) []models.Admission {
	flagged := make([]models.Admission, len(admissions))
	copy(flagged, admissions)

	byPatient := make(map[uint][]int)
	for i := range flagged {
		byPatient[flagged[i].PatientID] = append(byPatient[flagged[i].PatientID], i)
	}

	for _, idxs := range byPatient {
		sort.Slice(idxs, func(a, b int) bool {
			return flagged[idxs[a]].AdmissionDatetime.Before(flagged[idxs[b]].AdmissionDatetime)
		})
		var prevDischarge *time.Time
		for _, i := range idxs {
			if prevDischarge != nil && wholeDays(flagged[i].AdmissionDatetime.Sub(*prevDischarge)) <= readmissionWindowDays {
				flagged[i].IsReadmission = 1
			}
			d := flagged[i].DischargeDatetime
			prevDischarge = &d
		}
	}
	return flagged
}

// wholeDays truncates a duration to whole 24-hour periods.
func wholeDays(d time.Duration) int {
	return int(d / (24 * time.Hour))
}
