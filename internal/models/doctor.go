package models

// Doctor represents the doctors table
type Doctor struct {
	DoctorID       uint   `gorm:"column:doctor_id;primaryKey" json:"doctor_id"`
	DoctorName     string `gorm:"column:doctor_name;size:100;not null" json:"doctor_name"`
	DepartmentID   uint   `gorm:"column:department_id;not null;index" json:"department_id"`
	DepartmentName string `gorm:"column:department_name;size:100" json:"department_name"`
	AvailableHours int    `gorm:"column:available_hours;not null" json:"available_hours"`
	BookedHours    int    `gorm:"column:booked_hours;not null" json:"booked_hours"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
