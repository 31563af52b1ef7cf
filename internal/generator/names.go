package generator

// Name pools for synthetic patients and doctors.

var firstNames = []string{
	"Aarav", "Vivaan", "Aditya", "Arjun", "Sai", "Krishna", "Ishaan",
	"Rohan", "Karthik", "Pranav", "Rahul", "Vikram", "Suresh", "Ramesh",
	"Anand", "Deepak", "Manoj", "Naveen", "Prakash", "Sanjay",
	"Ananya", "Diya", "Aadhya", "Saanvi", "Ishita", "Kavya", "Meera",
	"Priya", "Divya", "Lakshmi", "Sneha", "Pooja", "Anjali", "Nandini",
	"Shreya", "Aishwarya", "Padma", "Radha", "Sunita", "Vidya",
}

var lastNames = []string{
	"Sharma", "Verma", "Reddy", "Nair", "Iyer", "Menon", "Pillai",
	"Patel", "Rao", "Naidu", "Gupta", "Kumar", "Singh", "Chopra",
	"Malhotra", "Krishnan", "Subramanian", "Venkatesan", "Hegde",
	"Shetty", "Kulkarni", "Joshi", "Desai", "Mehta", "Banerjee",
	"Chatterjee", "Mukherjee", "Das", "Bose", "Ghosh",
}

// fullName draws a synthetic person name.
func fullName(s *sampler) string {
	return s.pick(firstNames) + " " + s.pick(lastNames)
}

// doctorName draws a synthetic doctor name with the customary prefix.
func doctorName(s *sampler) string {
	return "Dr. " + fullName(s)
}
