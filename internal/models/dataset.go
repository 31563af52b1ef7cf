package models

// Dataset bundles all nine generated tables. Tables are materialized in
// dependency order and never mutated after generation, except the
// readmission flag pass which replaces the admissions slice wholesale.
type Dataset struct {
	Branches     []Branch
	Departments  []Department
	Doctors      []Doctor
	Patients     []Patient
	Admissions   []Admission
	Procedures   []Procedure
	Billing      []Billing
	Outcomes     []Outcome
	BedOccupancy []BedOccupancy
}
