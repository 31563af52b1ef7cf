package generator

// Static reference catalogs and rule tables. These are the hand-tuned
// distributions the dependent stages sample from; every table is plain data
// so each distribution can be inspected and tested on its own.

type branchDef struct {
	Name string
	City string
	Beds int
}

var branchDefs = []branchDef{
	{Name: "Chennai Main", City: "Chennai", Beds: 250},
	{Name: "Bangalore North", City: "Bangalore", Beds: 200},
	{Name: "Hyderabad Central", City: "Hyderabad", Beds: 180},
}

var departmentNames = []string{
	"Cardiology", "Oncology", "Orthopedics",
	"Pediatrics", "Emergency", "General Medicine",
}

// bedAllocation is each department's share of its branch's beds; weights sum to 1.
var bedAllocation = map[string]float64{
	"Emergency":        0.25,
	"General Medicine": 0.25,
	"Cardiology":       0.15,
	"Orthopedics":      0.15,
	"Pediatrics":       0.12,
	"Oncology":         0.08,
}

type intRange struct {
	Min, Max int
}

// losRules gives the inclusive length-of-stay range in days per department.
var losRules = map[string]intRange{
	"Emergency":        {1, 3},
	"Cardiology":       {4, 7},
	"Oncology":         {6, 12},
	"Orthopedics":      {3, 6},
	"Pediatrics":       {2, 5},
	"General Medicine": {2, 6},
}

// costRules gives the per-department base procedure cost range.
var costRules = map[string]intRange{
	"Emergency":        {10000, 40000},
	"Cardiology":       {30000, 120000},
	"Oncology":         {50000, 200000},
	"Orthopedics":      {20000, 80000},
	"Pediatrics":       {8000, 35000},
	"General Medicine": {12000, 45000},
}

var procedureTypes = map[string][]string{
	"Cardiology":       {"Angioplasty", "ECG", "Stress Test", "Cardiac Catheterization"},
	"Oncology":         {"Chemotherapy", "Radiation", "Biopsy", "Immunotherapy"},
	"Orthopedics":      {"Fracture Repair", "Joint Replacement", "Arthroscopy", "Spinal Surgery"},
	"Pediatrics":       {"Vaccination", "Appendectomy", "General Checkup"},
	"Emergency":        {"Trauma Care", "CPR", "Emergency Surgery", "Stabilization"},
	"General Medicine": {"Diagnostic Tests", "IV Therapy", "General Treatment"},
}

var (
	insuranceTypes   = []string{"Government", "Private", "Self-Pay"}
	insuranceWeights = []int{40, 45, 15}
)

var outcomeNames = []string{"Recovered", "Improved", "Transferred", "Deceased"}

// emergencyHourWeights weights each hour 0..23 for emergency admissions,
// favoring morning and midday arrivals.
var emergencyHourWeights = []int{
	3, 2, 2, 2, 3, 4, 5, 6, 7, 8, 7, 6,
	5, 4, 4, 5, 6, 7, 8, 9, 8, 7, 6, 5,
}
