package models

// Patient represents the patients table
type Patient struct {
	PatientID     uint   `gorm:"column:patient_id;primaryKey" json:"patient_id"`
	PatientName   string `gorm:"column:patient_name;size:100;not null" json:"patient_name"`
	Age           int    `gorm:"column:age;not null" json:"age"`
	Gender        string `gorm:"column:gender;size:10" json:"gender"`
	InsuranceType string `gorm:"column:insurance_type;size:20" json:"insurance_type"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
