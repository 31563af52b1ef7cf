package generator

import "hospital-analytics-backend/internal/models"

// ageBuckets shapes the patient age distribution: draw a bucket from the
// weighted categories, then an age uniformly within the bucket's range.
var (
	ageBucketRanges  = []intRange{{0, 14}, {15, 35}, {36, 55}, {56, 75}, {76, 95}}
	ageBucketWeights = []int{10, 20, 30, 28, 12}
)

var genders = []string{"Male", "Female"}

// buildPatients generates patient identities with bucketed demographics and
// weighted insurance-type assignment, ids ascending 1..N.
func (g *Generator) buildPatients() []models.Patient {
	patients := make([]models.Patient, 0, g.cfg.PatientCount)
	for id := 1; id <= g.cfg.PatientCount; id++ {
		bucket := ageBucketRanges[g.s.weightedIndex(ageBucketWeights)]
		patients = append(patients, models.Patient{
			PatientID:     uint(id),
			PatientName:   fullName(g.s),
			Age:           g.s.intBetween(bucket.Min, bucket.Max),
			Gender:        g.s.pick(genders),
			InsuranceType: g.s.weightedChoice(insuranceTypes, insuranceWeights),
		})
	}
	return patients
}
