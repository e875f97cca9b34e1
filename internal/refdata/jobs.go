package refdata

// JobListing - пример вакансии в районе Peak District
type JobListing struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	Category        string `json:"category"`
	JobType         string `json:"job_type"`
	SalaryRange     string `json:"salary_range"`
	Description     string `json:"description"`
	Featured        bool   `json:"featured"`
	VisaSponsorship bool   `json:"visa_sponsorship"`
}

// JobCategory is a distinct listing category with its listing count
type JobCategory struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SectorScores maps a sector name to its demand score (0-100)
type SectorScores struct {
	Sector string `json:"sector"`
	Score  int    `json:"score"`
}

// JobOpportunities is the sector overview for both locations
type JobOpportunities struct {
	PhoenixSectors      []SectorScores `json:"phoenix_jobs"`
	PeakDistrictSectors []SectorScores `json:"peak_district_jobs"`
	RemoteWork          []string       `json:"remote_work_opportunities"`
	PhoenixAvgSalaryUSD int            `json:"phoenix_avg_salary_usd"`
	PeakAvgSalaryGBP    int            `json:"peak_district_avg_salary_gbp"`
}

var jobListings = []JobListing{
	{ID: "job-001", Title: "Senior Software Engineer", Company: "Derbyshire Digital", Location: "Matlock",
		Category: "Technology", JobType: "full-time", SalaryRange: "£55,000 - £70,000",
		Description: "Build cloud services for regional public sector clients. Hybrid, two days in office.",
		Featured:    true, VisaSponsorship: true},
	{ID: "job-002", Title: "DevOps Engineer", Company: "Peak Systems Ltd", Location: "Buxton",
		Category: "Technology", JobType: "contract", SalaryRange: "£450 - £550 per day",
		Description: "Six-month contract migrating on-premise workloads to Kubernetes."},
	{ID: "job-003", Title: "Staff Nurse", Company: "Chesterfield Royal Hospital NHS Trust", Location: "Chesterfield",
		Category: "Healthcare", JobType: "full-time", SalaryRange: "£28,407 - £34,581",
		Description: "Band 5 nurse on an acute medical ward. International recruitment programme available.",
		Featured:    true, VisaSponsorship: true},
	{ID: "job-004", Title: "Physiotherapist", Company: "Derbyshire Community Health Services", Location: "Bakewell",
		Category: "Healthcare", JobType: "part-time", SalaryRange: "£35,392 - £42,618 pro rata",
		Description: "Community physiotherapy covering rural Peak District villages.", VisaSponsorship: true},
	{ID: "job-005", Title: "Ranger", Company: "Peak District National Park Authority", Location: "Castleton",
		Category: "Outdoor Recreation", JobType: "full-time", SalaryRange: "£24,000 - £27,000",
		Description: "Maintain footpaths, support volunteers and engage with visitors.", Featured: true},
	{ID: "job-006", Title: "Outdoor Activity Instructor", Company: "Edale Adventure Centre", Location: "Edale",
		Category: "Outdoor Recreation", JobType: "seasonal", SalaryRange: "£21,000 - £23,500",
		Description: "Lead climbing, caving and hill walking sessions for school groups."},
	{ID: "job-007", Title: "Hotel Operations Manager", Company: "Hathersage Hall", Location: "Hathersage",
		Category: "Tourism", JobType: "full-time", SalaryRange: "£32,000 - £38,000",
		Description: "Run day-to-day operations of a 14-room boutique hotel and restaurant."},
	{ID: "job-008", Title: "Secondary Mathematics Teacher", Company: "Lady Manners School", Location: "Bakewell",
		Category: "Education", JobType: "full-time", SalaryRange: "£31,650 - £43,607",
		Description: "Teach KS3-KS5 mathematics. Qualified Teacher Status required.", VisaSponsorship: true},
	{ID: "job-009", Title: "Financial Analyst", Company: "Peak Building Society", Location: "Buxton",
		Category: "Finance", JobType: "full-time", SalaryRange: "£40,000 - £48,000",
		Description: "Prepare management accounts and support lending risk models."},
	{ID: "job-010", Title: "Remote Product Designer", Company: "Moorland Apps", Location: "Remote (UK)",
		Category: "Technology", JobType: "remote", SalaryRange: "£45,000 - £58,000",
		Description: "Design mobile experiences for outdoor navigation products.", Featured: true},
}

var jobOpportunities = JobOpportunities{
	PhoenixSectors: []SectorScores{
		{Sector: "tech_sector", Score: 85},
		{Sector: "healthcare", Score: 92},
		{Sector: "finance", Score: 78},
		{Sector: "education", Score: 65},
	},
	PeakDistrictSectors: []SectorScores{
		{Sector: "tourism", Score: 88},
		{Sector: "agriculture", Score: 75},
		{Sector: "outdoor_recreation", Score: 82},
		{Sector: "local_services", Score: 70},
	},
	PhoenixAvgSalaryUSD: 62000,
	PeakAvgSalaryGBP:    28000,
	RemoteWork: []string{
		"Tech consulting",
		"Digital marketing",
		"Content creation",
		"Online education",
		"E-commerce",
	},
}
