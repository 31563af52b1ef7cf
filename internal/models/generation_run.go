package models

import "time"

// GenerationRun represents the generation_runs table
// One row is recorded per server-side dataset generation for traceability
type GenerationRun struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RunID      string    `gorm:"column:run_id;size:36;uniqueIndex;not null" json:"run_id"`
	Seed       int64     `gorm:"column:seed;not null" json:"seed"`
	Patients   int       `gorm:"column:patients;not null" json:"patients"`
	Admissions int       `gorm:"column:admissions;not null" json:"admissions"`
	Procedures int       `gorm:"column:procedures;not null" json:"procedures"`
	Snapshots  int       `gorm:"column:snapshots;not null" json:"snapshots"`
	DurationMs int64     `gorm:"column:duration_ms;not null" json:"duration_ms"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for GenerationRun model
func (GenerationRun) TableName() string {
	return "generation_runs"
}
