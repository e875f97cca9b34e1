package refdata

// VisaRequirement описывает один визовый маршрут в UK
type VisaRequirement struct {
	Type           string   `json:"type"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	ProcessingTime string   `json:"processing_time"`
	Cost           string   `json:"cost"`
	Validity       string   `json:"validity"`
	Requirements   []string `json:"requirements"`
}

// ChecklistItem is one document or task of the visa checklist
type ChecklistItem struct {
	Item     string `json:"item"`
	Category string `json:"category"`
	Required bool   `json:"required"`
}

var visaRequirements = []VisaRequirement{
	{
		Type:           "skilled-worker",
		Name:           "Skilled Worker visa",
		Description:    "For people with a job offer from a UK employer approved by the Home Office.",
		ProcessingTime: "3 weeks (outside the UK)",
		Cost:           "£719 - £1,500 plus Immigration Health Surcharge",
		Validity:       "Up to 5 years, extendable",
		Requirements: []string{
			"Certificate of sponsorship from a licensed sponsor",
			"Job at the required skill level (RQF 3 or above)",
			"Salary at or above the going rate",
			"English language at CEFR level B1",
			"Proof of personal savings of at least £1,270 unless certified by sponsor",
			"Tuberculosis test certificate",
		},
	},
	{
		Type:           "global-talent",
		Name:           "Global Talent visa",
		Description:    "For leaders or potential leaders in academia, research, arts and culture or digital technology.",
		ProcessingTime: "3 weeks after endorsement",
		Cost:           "£716 plus Immigration Health Surcharge",
		Validity:       "Up to 5 years",
		Requirements: []string{
			"Endorsement from an approved body such as Tech Nation",
			"Evidence of exceptional talent or promise",
			"Valid passport",
		},
	},
	{
		Type:           "family",
		Name:           "Family visa (partner or spouse)",
		Description:    "For joining a partner who is a British citizen or settled in the UK.",
		ProcessingTime: "12 weeks",
		Cost:           "£1,938 plus Immigration Health Surcharge",
		Validity:       "2 years 9 months, extendable",
		Requirements: []string{
			"Genuine and subsisting relationship",
			"Minimum income requirement of £29,000",
			"English language at CEFR level A1",
			"Adequate accommodation",
		},
	},
	{
		Type:           "ancestry",
		Name:           "UK Ancestry visa",
		Description:    "For Commonwealth citizens with a grandparent born in the UK.",
		ProcessingTime: "3 weeks",
		Cost:           "£637 plus Immigration Health Surcharge",
		Validity:       "5 years",
		Requirements: []string{
			"Commonwealth citizenship",
			"Grandparent born in the UK or Islands",
			"Intention and ability to work in the UK",
		},
	},
}

var visaChecklist = []ChecklistItem{
	{Item: "Valid passport with a blank page", Category: "Identity", Required: true},
	{Item: "Certificate of sponsorship reference number", Category: "Employment", Required: true},
	{Item: "Proof of English language ability", Category: "Eligibility", Required: true},
	{Item: "Bank statements covering 28 days", Category: "Financial", Required: true},
	{Item: "Tuberculosis test certificate", Category: "Health", Required: true},
	{Item: "Criminal record certificate", Category: "Background", Required: false},
	{Item: "Translated copies of non-English documents", Category: "Identity", Required: false},
	{Item: "Immigration Health Surcharge payment reference", Category: "Financial", Required: true},
	{Item: "Biometrics appointment confirmation", Category: "Application", Required: true},
}
