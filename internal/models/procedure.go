package models

import "time"

// Procedure represents the procedures table
type Procedure struct {
	ProcedureID       uint      `gorm:"column:procedure_id;primaryKey" json:"procedure_id"`
	AdmissionID       uint      `gorm:"column:admission_id;not null;index" json:"admission_id"`
	DoctorID          uint      `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	ProcedureType     string    `gorm:"column:procedure_type;size:100" json:"procedure_type"`
	ProcedureDatetime time.Time `gorm:"column:procedure_datetime;not null" json:"procedure_datetime"`
	DurationMinutes   int       `gorm:"column:duration_minutes;not null" json:"duration_minutes"`
}

// TableName specifies the table name for Procedure model
func (Procedure) TableName() string {
	return "procedures"
}
