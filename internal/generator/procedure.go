package generator

import (
	"time"

	"hospital-analytics-backend/internal/models"
)

// buildProcedures attaches procedures to each admission. Counts are
// department-conditioned, timing falls inside the stay, and the type comes
// from the department's procedure catalog. Ids run sequentially across all
// admissions in admission order.
func (g *Generator) buildProcedures(admissions []models.Admission) []models.Procedure {
	var procedures []models.Procedure
	id := uint(1)
	for _, adm := range admissions {
		var count int
		switch adm.DepartmentName {
		case "Oncology":
			count = g.s.intBetween(2, 5)
		case "Cardiology":
			count = g.s.intBetween(1, 3)
		default:
			count = g.s.intBetween(1, 2)
		}

		for i := 0; i < count; i++ {
			daysInto := g.s.intBetween(0, max(0, adm.LengthOfStay-1))
			procedures = append(procedures, models.Procedure{
				ProcedureID:       id,
				AdmissionID:       adm.AdmissionID,
				DoctorID:          adm.DoctorID,
				ProcedureType:     g.s.pick(procedureTypes[adm.DepartmentName]),
				ProcedureDatetime: adm.AdmissionDatetime.Add(time.Duration(daysInto) * 24 * time.Hour),
				DurationMinutes:   g.s.intBetween(30, 240),
			})
			id++
		}
	}
	return procedures
}
