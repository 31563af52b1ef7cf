package models

// Department represents the departments table
// Bed capacity is the branch's bed count scaled by the department allocation weight
type Department struct {
	DepartmentID   uint   `gorm:"column:department_id;primaryKey" json:"department_id"`
	DepartmentName string `gorm:"column:department_name;size:100;not null" json:"department_name"`
	BranchID       uint   `gorm:"column:branch_id;not null;index" json:"branch_id"`
	TotalBeds      int    `gorm:"column:total_beds;not null" json:"total_beds"`
}

// TableName specifies the table name for Department model
func (Department) TableName() string {
	return "departments"
}
