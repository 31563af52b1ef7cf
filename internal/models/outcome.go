package models

// Outcome represents the outcomes table, one row per admission
type Outcome struct {
	AdmissionID uint   `gorm:"column:admission_id;primaryKey" json:"admission_id"`
	Outcome     string `gorm:"column:outcome;size:20;not null" json:"outcome"`
}

// TableName specifies the table name for Outcome model
func (Outcome) TableName() string {
	return "outcomes"
}
