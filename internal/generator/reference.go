package generator

import "hospital-analytics-backend/internal/models"

// buildBranches materializes the fixed branch catalog. Deterministic, no
// randomness.
func (g *Generator) buildBranches() []models.Branch {
	branches := make([]models.Branch, 0, len(branchDefs))
	for i, def := range branchDefs {
		branches = append(branches, models.Branch{
			BranchID:   uint(i + 1),
			BranchName: def.Name,
			City:       def.City,
			TotalBeds:  def.Beds,
		})
	}
	return branches
}

// buildDepartments creates one department per (branch, department name) pair,
// allocating each department's bed share of the branch total.
func (g *Generator) buildDepartments(branches []models.Branch) []models.Department {
	departments := make([]models.Department, 0, len(branches)*len(departmentNames))
	id := uint(1)
	for _, branch := range branches {
		for _, name := range departmentNames {
			departments = append(departments, models.Department{
				DepartmentID:   id,
				DepartmentName: name,
				BranchID:       branch.BranchID,
				TotalBeds:      int(float64(branch.TotalBeds) * bedAllocation[name]),
			})
			id++
		}
	}
	return departments
}
