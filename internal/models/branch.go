package models

// Branch represents the branches table
type Branch struct {
	BranchID   uint   `gorm:"column:branch_id;primaryKey" json:"branch_id"`
	BranchName string `gorm:"column:branch_name;size:100;not null" json:"branch_name"`
	City       string `gorm:"column:city;size:100" json:"city"`
	TotalBeds  int    `gorm:"column:total_beds;not null" json:"total_beds"`
}

// TableName specifies the table name for Branch model
func (Branch) TableName() string {
	return "branches"
}
