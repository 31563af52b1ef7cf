package repository

import (
	"hospital-analytics-backend/internal/models"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

const kpiSummaryQuery = `
SELECT
    COUNT(*) AS total_admissions,
    AVG(length_of_stay) AS avg_los,
    SUM(CASE WHEN admission_type = 'Emergency' THEN 1 ELSE 0 END) * 100.0 / COUNT(*) AS emergency_pct,
    SUM(CASE WHEN is_readmission = 1 THEN 1 ELSE 0 END) * 100.0 / COUNT(*) AS readmission_rate
FROM admissions`

// KPISummary returns the executive admission KPIs.
func (r *AnalyticsRepository) KPISummary() (*models.KPISummary, error) {
	var summary models.KPISummary
	if err := r.db.Raw(kpiSummaryQuery).Scan(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

const bedAlertsQuery = `
SELECT
    department_name,
    branch_id,
    snapshot_datetime,
    occupancy_rate
FROM bed_occupancy
WHERE occupancy_rate > ?
ORDER BY occupancy_rate DESC`

// BedAlerts returns snapshots whose occupancy exceeds the threshold,
// most critical first.
func (r *AnalyticsRepository) BedAlerts(threshold float64) ([]models.BedAlert, error) {
	var alerts []models.BedAlert
	err := r.db.Raw(bedAlertsQuery, threshold).Scan(&alerts).Error
	return alerts, err
}

const emergencyLoadQuery = `
SELECT
    DAYNAME(admission_datetime) AS day_of_week,
    HOUR(admission_datetime) AS hour_of_day,
    COUNT(*) AS emergency_cases
FROM admissions
WHERE admission_type = 'Emergency'
GROUP BY
    DAYNAME(admission_datetime),
    HOUR(admission_datetime)
ORDER BY emergency_cases DESC`

// EmergencyLoad returns emergency admission counts per (weekday, hour) bucket.
func (r *AnalyticsRepository) EmergencyLoad() ([]models.EmergencyLoadRow, error) {
	var rows []models.EmergencyLoadRow
	err := r.db.Raw(emergencyLoadQuery).Scan(&rows).Error
	return rows, err
}

const doctorUtilizationQuery = `
SELECT
    doc.doctor_name,
    dept.department_name,
    doc.available_hours,
    COALESCE(SUM(pr.duration_minutes), 0) / 60.0 AS actual_hours_spent,
    (COALESCE(SUM(pr.duration_minutes), 0) / 60.0 / NULLIF(doc.available_hours, 0)) * 100 AS utilization_pct
FROM doctors doc
JOIN departments dept ON doc.department_id = dept.department_id
LEFT JOIN procedures pr ON doc.doctor_id = pr.doctor_id
GROUP BY doc.doctor_id, doc.doctor_name, dept.department_name, doc.available_hours`

// DoctorUtilization returns per-doctor workload derived from procedure
// durations against available hours.
func (r *AnalyticsRepository) DoctorUtilization() ([]models.DoctorUtilizationRow, error) {
	var rows []models.DoctorUtilizationRow
	err := r.db.Raw(doctorUtilizationQuery).Scan(&rows).Error
	return rows, err
}
