package generator

import "hospital-analytics-backend/internal/models"

// buildBilling synthesizes one bill per admission from room, procedure,
// medicine and diagnostic components. The insurance split is conditioned on
// the patient's insurance type; Self-Pay always carries the full amount.
func (g *Generator) buildBilling(
	admissions []models.Admission,
	procedures []models.Procedure,
	patients []models.Patient,
) []models.Billing {
	procCounts := make(map[uint]int, len(admissions))
	for _, p := range procedures {
		procCounts[p.AdmissionID]++
	}
	insuranceByPatient := make(map[uint]string, len(patients))
	for _, p := range patients {
		insuranceByPatient[p.PatientID] = p.InsuranceType
	}

	billing := make([]models.Billing, 0, len(admissions))
	for _, adm := range admissions {
		base := costRules[adm.DepartmentName]

		roomCost := g.s.intBetween(3000, 8000) * adm.LengthOfStay
		procedureCost := g.s.intBetween(base.Min/2, base.Max/2) * procCounts[adm.AdmissionID]
		medicineCost := g.s.intBetween(2000, 30000)
		diagnosticCost := g.s.intBetween(3000, 15000)
		total := roomCost + procedureCost + medicineCost + diagnosticCost

		var covered float64
		switch insuranceByPatient[adm.PatientID] {
		case "Government":
			covered = float64(total) * g.s.floatBetween(0.70, 0.90)
		case "Private":
			covered = float64(total) * g.s.floatBetween(0.60, 0.85)
		default: // Self-Pay
			covered = 0
		}

		billing = append(billing, models.Billing{
			AdmissionID:      adm.AdmissionID,
			RoomCost:         roomCost,
			ProcedureCost:    procedureCost,
			MedicineCost:     medicineCost,
			DiagnosticCost:   diagnosticCost,
			TotalCost:        total,
			InsuranceCovered: round2(covered),
			PatientPaid:      round2(float64(total) - covered),
		})
	}
	return billing
}
