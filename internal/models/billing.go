package models

// Billing represents the billing table, one row per admission
// total_cost is always the exact sum of the four component costs and
// patient_paid the remainder after insurance coverage.
type Billing struct {
	AdmissionID      uint    `gorm:"column:admission_id;primaryKey" json:"admission_id"`
	RoomCost         int     `gorm:"column:room_cost;not null" json:"room_cost"`
	ProcedureCost    int     `gorm:"column:procedure_cost;not null" json:"procedure_cost"`
	MedicineCost     int     `gorm:"column:medicine_cost;not null" json:"medicine_cost"`
	DiagnosticCost   int     `gorm:"column:diagnostic_cost;not null" json:"diagnostic_cost"`
	TotalCost        int     `gorm:"column:total_cost;not null" json:"total_cost"`
	InsuranceCovered float64 `gorm:"column:insurance_covered;not null" json:"insurance_covered"`
	PatientPaid      float64 `gorm:"column:patient_paid;not null" json:"patient_paid"`
}

// TableName specifies the table name for Billing model
func (Billing) TableName() string {
	return "billing"
}
