package refdata

// Link - ссылка на внешний ресурс
type Link struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ResourceCategory groups links under one heading
type ResourceCategory struct {
	Category string `json:"category"`
	Links    []Link `json:"links"`
}

// Extension - браузерное расширение, доступное для скачивания
type Extension struct {
	ID            string   `json:"id"`
	ExtensionName string   `json:"extension_name"`
	DownloadURL   string   `json:"download_url"`
	Version       string   `json:"version"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
}

var resourceCategories = []ResourceCategory{
	{
		Category: "Immigration",
		Links: []Link{
			{Name: "UK Visas and Immigration", URL: "https://www.gov.uk/government/organisations/uk-visas-and-immigration",
				Description: "Official visa guidance and application portal"},
			{Name: "Register of licensed sponsors", URL: "https://www.gov.uk/government/publications/register-of-licensed-sponsors-workers",
				Description: "Employers allowed to sponsor Skilled Worker visas"},
		},
	},
	{
		Category: "Housing",
		Links: []Link{
			{Name: "Rightmove", URL: "https://www.rightmove.co.uk", Description: "Property listings for sale and rent"},
			{Name: "Zoopla", URL: "https://www.zoopla.co.uk", Description: "Property listings and price history"},
			{Name: "Shelter England", URL: "https://england.shelter.org.uk", Description: "Tenant rights and renting advice"},
		},
	},
	{
		Category: "Healthcare",
		Links: []Link{
			{Name: "NHS find a GP", URL: "https://www.nhs.uk/service-search/find-a-gp", Description: "Register with a local surgery"},
		},
	},
	{
		Category: "Finance",
		Links: []Link{
			{Name: "Wise", URL: "https://wise.com", Description: "Low-fee international transfers"},
			{Name: "IRS Americans abroad", URL: "https://www.irs.gov/individuals/international-taxpayers/us-citizens-and-resident-aliens-abroad",
				Description: "US tax obligations for expats"},
		},
	},
	{
		Category: "Local life",
		Links: []Link{
			{Name: "Peak District National Park", URL: "https://www.peakdistrict.gov.uk", Description: "Park authority, trails and events"},
			{Name: "Derbyshire County Council", URL: "https://www.derbyshire.gov.uk", Description: "Schools, council tax and local services"},
		},
	},
}

var extensions = []Extension{
	{
		ExtensionName: "Relocate Me Helper",
		DownloadURL:   "/api/download/relocate-helper.crx",
		Version:       "1.0.0",
		Description:   "Quick access to relocation data and bookmarking tools",
		Features:      []string{"Bookmark locations", "Compare costs", "Save searches"},
	},
	{
		ExtensionName: "Property Finder",
		DownloadURL:   "/api/download/property-finder.crx",
		Version:       "1.2.1",
		Description:   "Find and compare properties across different locations",
		Features:      []string{"Property search", "Price comparison", "Market analysis"},
	},
}
