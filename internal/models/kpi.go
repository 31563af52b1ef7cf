package models

import "time"

// KPISummary holds the executive admission KPIs (single row)
type KPISummary struct {
	TotalAdmissions int     `gorm:"column:total_admissions" json:"total_admissions"`
	AvgLOS          float64 `gorm:"column:avg_los" json:"avg_los"`
	EmergencyPct    float64 `gorm:"column:emergency_pct" json:"emergency_pct"`
	ReadmissionRate float64 `gorm:"column:readmission_rate" json:"readmission_rate"`
}

// BedAlert is a department snapshot whose occupancy crossed the alert threshold
type BedAlert struct {
	DepartmentName   string    `gorm:"column:department_name" json:"department_name"`
	BranchID         uint      `gorm:"column:branch_id" json:"branch_id"`
	SnapshotDatetime time.Time `gorm:"column:snapshot_datetime" json:"snapshot_datetime"`
	OccupancyRate    float64   `gorm:"column:occupancy_rate" json:"occupancy_rate"`
}

// EmergencyLoadRow is the emergency admission count for one (weekday, hour) bucket
type EmergencyLoadRow struct {
	DayOfWeek      string `gorm:"column:day_of_week" json:"day_of_week"`
	HourOfDay      int    `gorm:"column:hour_of_day" json:"hour_of_day"`
	EmergencyCases int    `gorm:"column:emergency_cases" json:"emergency_cases"`
}

// DoctorUtilizationRow is one doctor's workload derived from procedure durations
type DoctorUtilizationRow struct {
	DoctorName       string   `gorm:"column:doctor_name" json:"doctor_name"`
	DepartmentName   string   `gorm:"column:department_name" json:"department_name"`
	AvailableHours   int      `gorm:"column:available_hours" json:"available_hours"`
	ActualHoursSpent float64  `gorm:"column:actual_hours_spent" json:"actual_hours_spent"`
	UtilizationPct   *float64 `gorm:"column:utilization_pct" json:"utilization_pct"`
}
