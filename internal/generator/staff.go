package generator

import "hospital-analytics-backend/internal/models"

// availableHours is every doctor's monthly availability.
const availableHours = 160

// buildDoctors staffs each department with 3-5 doctors. Booked hours derive
// from a utilization fraction whose range depends on the department tier:
// high-pressure departments run hotter.
func (g *Generator) buildDoctors(departments []models.Department) []models.Doctor {
	var doctors []models.Doctor
	id := uint(1)
	for _, dept := range departments {
		count := g.s.intBetween(3, 5)
		for i := 0; i < count; i++ {
			var utilization float64
			switch dept.DepartmentName {
			case "Emergency", "General Medicine":
				utilization = g.s.floatBetween(0.75, 0.95)
			case "Oncology":
				utilization = g.s.floatBetween(0.65, 0.85)
			default:
				utilization = g.s.floatBetween(0.60, 0.80)
			}

			doctors = append(doctors, models.Doctor{
				DoctorID:       id,
				DoctorName:     doctorName(g.s),
				DepartmentID:   dept.DepartmentID,
				DepartmentName: dept.DepartmentName,
				AvailableHours: availableHours,
				BookedHours:    int(float64(availableHours) * utilization),
			})
			id++
		}
	}
	return doctors
}
