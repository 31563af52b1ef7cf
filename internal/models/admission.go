package models

import "time"

// Admission represents the admissions table
// IsReadmission is finalized in a dedicated pass after all admissions exist,
// since it depends on sibling records for the same patient.
type Admission struct {
	AdmissionID       uint      `gorm:"column:admission_id;primaryKey" json:"admission_id"`
	PatientID         uint      `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DepartmentID      uint      `gorm:"column:department_id;not null;index" json:"department_id"`
	DepartmentName    string    `gorm:"column:department_name;size:100" json:"department_name"`
	BranchID          uint      `gorm:"column:branch_id;not null;index" json:"branch_id"`
	DoctorID          uint      `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	AdmissionDatetime time.Time `gorm:"column:admission_datetime;not null" json:"admission_datetime"`
	DischargeDatetime time.Time `gorm:"column:discharge_datetime;not null" json:"discharge_datetime"`
	AdmissionType     string    `gorm:"column:admission_type;size:20" json:"admission_type"`
	LengthOfStay      int       `gorm:"column:length_of_stay;not null" json:"length_of_stay"`
	IsReadmission     int       `gorm:"column:is_readmission;default:0" json:"is_readmission"`
}

// TableName specifies the table name for Admission model
func (Admission) TableName() string {
	return "admissions"
}
