package domain

// Static directory enumerations served by /api/job-categories and
// /api/job-types.

func JobCategories() []string {
	return []string{
		"Technology",
		"Healthcare",
		"Finance",
		"Education",
		"Marketing",
		"Sales",
		"Customer Service",
		"Administration",
		"Engineering",
		"Design",
		"Other",
	}
}

func JobTypes() []string {
	return []string{
		"Full-time",
		"Part-time",
		"Contract",
		"Freelance",
		"Internship",
		"Remote",
	}
}
