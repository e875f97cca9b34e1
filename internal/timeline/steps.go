package timeline

import "slices"

// Step описывает один шаг переезда в статическом каталоге
type Step struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Dependencies  []int    `json:"dependencies"`
	Resources     []string `json:"resources"`
	ID            int      `json:"id"`
	EstimatedDays int      `json:"estimated_duration_days"`
}

// Catalog is an immutable ordered list of relocation steps.
// It is built once at process start and shared read-only between requests.
type Catalog struct {
	index map[int]int
	steps []Step
}

// NewCatalog builds a catalog from steps, keeping their order
func NewCatalog(steps []Step) *Catalog {
	c := &Catalog{
		steps: make([]Step, len(steps)),
		index: make(map[int]int, len(steps)),
	}
	for i, s := range steps {
		s.Dependencies = slices.Clone(s.Dependencies)
		s.Resources = slices.Clone(s.Resources)
		c.steps[i] = s
		c.index[s.ID] = i
	}
	return c
}

// DefaultCatalog returns the Phoenix -> Peak District relocation plan (34 steps)
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultSteps)
}

// Total returns the number of defined steps
func (c *Catalog) Total() int {
	return len(c.steps)
}

// Steps returns a copy of all steps in catalog order
func (c *Catalog) Steps() []Step {
	out := make([]Step, len(c.steps))
	for i, s := range c.steps {
		s.Dependencies = slices.Clone(s.Dependencies)
		s.Resources = slices.Clone(s.Resources)
		out[i] = s
	}
	return out
}

// Step looks up a step by id
func (c *Catalog) Step(id int) (Step, bool) {
	i, ok := c.index[id]
	if !ok {
		return Step{}, false
	}
	return c.steps[i], true
}

// Categories returns category names in order of first appearance
func (c *Catalog) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range c.steps {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}

var defaultSteps = []Step{
	// Planning
	{ID: 1, Title: "Research Peak District towns", Category: PhasePlanning, EstimatedDays: 14,
		Description: "Compare Buxton, Bakewell, Matlock, Hathersage and Castleton on commute, schools and amenities.",
		Resources:   []string{"Peak District National Park Authority", "Rightmove area guides"}},
	{ID: 2, Title: "Set relocation budget", Category: PhasePlanning, EstimatedDays: 7, Dependencies: []int{1},
		Description: "Estimate moving, visa, deposit and first-three-months living costs in GBP.",
		Resources:   []string{"Numbeo cost of living", "Wise currency calculator"}},
	{ID: 3, Title: "Choose target move date", Category: PhasePlanning, EstimatedDays: 3, Dependencies: []int{2},
		Description: "Pick a move window that accounts for visa processing and Phoenix lease end.",
		Resources:   []string{"UK visa processing times"}},

	// Visa & Legal
	{ID: 4, Title: "Determine visa route", Category: PhaseVisaLegal, EstimatedDays: 5, Dependencies: []int{3},
		Description: "Decide between Skilled Worker, Global Talent, Family and other routes.",
		Resources:   []string{"GOV.UK check if you need a visa"}},
	{ID: 5, Title: "Gather visa documents", Category: PhaseVisaLegal, EstimatedDays: 21, Dependencies: []int{4},
		Description: "Passport, certificate of sponsorship, bank statements, TB test and English proof.",
		Resources:   []string{"GOV.UK Skilled Worker documents", "IOM TB testing clinics"}},
	{ID: 6, Title: "Submit visa application", Category: PhaseVisaLegal, EstimatedDays: 2, Dependencies: []int{5},
		Description: "Complete the online form, pay the fee and Immigration Health Surcharge.",
		Resources:   []string{"GOV.UK apply online"}},
	{ID: 7, Title: "Attend biometrics appointment", Category: PhaseVisaLegal, EstimatedDays: 1, Dependencies: []int{6},
		Description: "Provide fingerprints and photo at a USCIS application support center.",
		Resources:   []string{"TLScontact", "VFS Global"}},

	// Employment
	{ID: 8, Title: "Update CV to UK format", Category: PhaseEmployment, EstimatedDays: 3, Dependencies: []int{1},
		Description: "Two-page CV without photo or date of birth, UK spelling.",
		Resources:   []string{"National Careers Service CV guide"}},
	{ID: 9, Title: "Apply to UK employers", Category: PhaseEmployment, EstimatedDays: 30, Dependencies: []int{8},
		Description: "Target licensed sponsors within commuting distance of the Peak District.",
		Resources:   []string{"Register of licensed sponsors", "Indeed UK", "LinkedIn Jobs"}},
	{ID: 10, Title: "Interview and receive offer", Category: PhaseEmployment, EstimatedDays: 30, Dependencies: []int{9},
		Description: "Complete interviews and negotiate salary, start date and relocation support.",
		Resources:   []string{"Glassdoor UK salaries"}},
	{ID: 11, Title: "Obtain certificate of sponsorship", Category: PhaseEmployment, EstimatedDays: 14, Dependencies: []int{10},
		Description: "Employer issues the CoS reference required for the Skilled Worker visa.",
		Resources:   []string{"GOV.UK sponsorship guidance"}},

	// Housing
	{ID: 12, Title: "Research rental market", Category: PhaseHousing, EstimatedDays: 7, Dependencies: []int{1},
		Description: "Compare cottages, terraced and detached rentals and typical deposits.",
		Resources:   []string{"Rightmove", "Zoopla", "OpenRent"}},
	{ID: 13, Title: "Arrange temporary accommodation", Category: PhaseHousing, EstimatedDays: 3, Dependencies: []int{3},
		Description: "Book four to six weeks of short-let housing for arrival.",
		Resources:   []string{"Airbnb", "Cottages.com"}},
	{ID: 14, Title: "Prepare tenant references", Category: PhaseHousing, EstimatedDays: 7, Dependencies: []int{12},
		Description: "Landlord reference, employer letter and proof of funds for referencing checks.",
		Resources:   []string{"Shelter England renting guide"}},
	{ID: 15, Title: "Sign long-term lease", Category: PhaseHousing, EstimatedDays: 14, Dependencies: []int{13, 14},
		Description: "View properties after arrival or by video, pay deposit into a protection scheme.",
		Resources:   []string{"Deposit Protection Service"}},

	// Financial
	{ID: 16, Title: "Open UK-friendly bank account", Category: PhaseFinancial, EstimatedDays: 5, Dependencies: []int{2},
		Description: "Open an account that can be used before a UK address exists.",
		Resources:   []string{"Wise", "Monzo", "HSBC Expat"}},
	{ID: 17, Title: "Plan US tax obligations", Category: PhaseFinancial, EstimatedDays: 7, Dependencies: []int{16},
		Description: "Understand FBAR, FATCA and the foreign earned income exclusion.",
		Resources:   []string{"IRS Publication 54"}},
	{ID: 18, Title: "Transfer savings", Category: PhaseFinancial, EstimatedDays: 3, Dependencies: []int{16},
		Description: "Move the relocation budget to GBP with a low-fee transfer service.",
		Resources:   []string{"Wise", "OFX"}},
	{ID: 19, Title: "Build UK credit history", Category: PhaseFinancial, EstimatedDays: 30, Dependencies: []int{18},
		Description: "Register on the electoral roll and open a starter credit card.",
		Resources:   []string{"Experian UK", "ClearScore"}},

	// Logistics
	{ID: 20, Title: "Get international moving quotes", Category: PhaseLogistics, EstimatedDays: 7, Dependencies: []int{3},
		Description: "Compare container shipping, air freight and sell-and-replace options.",
		Resources:   []string{"International Association of Movers"}},
	{ID: 21, Title: "Declutter and sell belongings", Category: PhaseLogistics, EstimatedDays: 21, Dependencies: []int{20},
		Description: "Sell appliances incompatible with 230V and bulky furniture.",
		Resources:   []string{"Facebook Marketplace", "OfferUp"}},
	{ID: 22, Title: "Arrange pet relocation", Category: PhaseLogistics, EstimatedDays: 30, Dependencies: []int{3},
		Description: "Microchip, rabies vaccination and animal health certificate for entry to Great Britain.",
		Resources:   []string{"APHIS pet travel", "GOV.UK bringing your pet"}},
	{ID: 23, Title: "Book flights", Category: PhaseLogistics, EstimatedDays: 1, Dependencies: []int{7},
		Description: "Book PHX to MAN flights after the visa decision.",
		Resources:   []string{"Google Flights"}},

	// US Exit
	{ID: 24, Title: "Give notice on Phoenix lease", Category: PhaseUSExit, EstimatedDays: 30, Dependencies: []int{23},
		Description: "Serve written notice and schedule the move-out inspection.",
		Resources:   []string{"Arizona Residential Landlord and Tenant Act"}},
	{ID: 25, Title: "Cancel utilities and subscriptions", Category: PhaseUSExit, EstimatedDays: 3, Dependencies: []int{24},
		Description: "APS, SRP, water, internet and streaming services.",
		Resources:   []string{"APS", "SRP"}},
	{ID: 26, Title: "Set up US mail forwarding", Category: PhaseUSExit, EstimatedDays: 2, Dependencies: []int{24},
		Description: "Use a virtual mailbox to keep a US address for banks and the IRS.",
		Resources:   []string{"USPS forwarding", "Traveling Mailbox"}},

	// UK Arrival
	{ID: 27, Title: "Collect BRP or activate eVisa", Category: PhaseUKArrival, EstimatedDays: 2, Dependencies: []int{23},
		Description: "Confirm immigration status in the UKVI account within ten days of arrival.",
		Resources:   []string{"GOV.UK eVisa"}},
	{ID: 28, Title: "Get a UK mobile number", Category: PhaseUKArrival, EstimatedDays: 1, Dependencies: []int{27},
		Description: "Buy a SIM-only plan; check coverage in rural valleys.",
		Resources:   []string{"Ofcom coverage checker"}},
	{ID: 29, Title: "Apply for National Insurance number", Category: PhaseUKArrival, EstimatedDays: 14, Dependencies: []int{27},
		Description: "Needed for payroll and tax records.",
		Resources:   []string{"GOV.UK apply for a National Insurance number"}},
	{ID: 30, Title: "Register with a GP", Category: PhaseUKArrival, EstimatedDays: 7, Dependencies: []int{27},
		Description: "Register with a local NHS surgery once an address is known.",
		Resources:   []string{"NHS find a GP"}},

	// Settlement
	{ID: 31, Title: "Exchange US driving licence", Category: PhaseSettlement, EstimatedDays: 30, Dependencies: []int{27},
		Description: "US licences are valid for 12 months; book the theory and practical tests.",
		Resources:   []string{"DVLA", "DVSA practical test booking"}},
	{ID: 32, Title: "Register for council tax", Category: PhaseSettlement, EstimatedDays: 2, Dependencies: []int{15},
		Description: "Register with Derbyshire Dales or High Peak Borough Council.",
		Resources:   []string{"Derbyshire Dales District Council", "High Peak Borough Council"}},
	{ID: 33, Title: "Join local community groups", Category: PhaseSettlement, EstimatedDays: 14, Dependencies: []int{32},
		Description: "Walking clubs, village halls and parish events.",
		Resources:   []string{"Ramblers", "Peak District walking groups"}},
	{ID: 34, Title: "Plan route to settlement", Category: PhaseSettlement, EstimatedDays: 7, Dependencies: []int{31, 33},
		Description: "Track the five-year path to Indefinite Leave to Remain and the Life in the UK test.",
		Resources:   []string{"GOV.UK indefinite leave to remain", "Life in the UK test"}},
}
