package generator

import "hospital-analytics-backend/internal/models"

// Outcome weight rows are priority-ordered: the department checks win over
// the age check, and the first match fires.
var (
	oncologyOutcomeWeights  = []int{50, 30, 15, 5}
	emergencyOutcomeWeights = []int{60, 25, 10, 5}
	elderlyOutcomeWeights   = []int{60, 25, 12, 3}
	defaultOutcomeWeights   = []int{75, 20, 4, 1}
)

// buildOutcomes samples one discharge outcome per admission from
// department/age-conditioned distributions.
func (g *Generator) buildOutcomes(admissions []models.Admission, patients []models.Patient) []models.Outcome {
	ageByPatient := make(map[uint]int, len(patients))
	for _, p := range patients {
		ageByPatient[p.PatientID] = p.Age
	}

	outcomes := make([]models.Outcome, 0, len(admissions))
	for _, adm := range admissions {
		var weights []int
		switch {
		case adm.DepartmentName == "Oncology":
			weights = oncologyOutcomeWeights
		case adm.DepartmentName == "Emergency":
			weights = emergencyOutcomeWeights
		case ageByPatient[adm.PatientID] > 75:
			weights = elderlyOutcomeWeights
		default:
			weights = defaultOutcomeWeights
		}
		outcomes = append(outcomes, models.Outcome{
			AdmissionID: adm.AdmissionID,
			Outcome:     g.s.weightedChoice(outcomeNames, weights),
		})
	}
	return outcomes
}
