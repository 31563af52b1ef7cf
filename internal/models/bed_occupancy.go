package models

import "time"

// BedOccupancy represents the bed_occupancy table: one snapshot per
// department per calendar day, taken at a fixed 08:00 instant.
type BedOccupancy struct {
	SnapshotID       uint      `gorm:"column:snapshot_id;primaryKey" json:"snapshot_id"`
	DepartmentID     uint      `gorm:"column:department_id;not null;index" json:"department_id"`
	DepartmentName   string    `gorm:"column:department_name;size:100" json:"department_name"`
	BranchID         uint      `gorm:"column:branch_id;not null;index" json:"branch_id"`
	SnapshotDatetime time.Time `gorm:"column:snapshot_datetime;not null" json:"snapshot_datetime"`
	OccupiedBeds     int       `gorm:"column:occupied_beds;not null" json:"occupied_beds"`
	TotalBeds        int       `gorm:"column:total_beds;not null" json:"total_beds"`
	OccupancyRate    float64   `gorm:"column:occupancy_rate;not null" json:"occupancy_rate"`
}

// TableName specifies the table name for BedOccupancy model
func (BedOccupancy) TableName() string {
	return "bed_occupancy"
}
