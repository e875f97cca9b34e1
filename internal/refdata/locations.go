package refdata

// Slugs of the two fixed locations
const (
	LocationPhoenix      = "phoenix"
	LocationPeakDistrict = "peak-district"
)

// Weather описывает климатические показатели локации
type Weather struct {
	Climate   string `json:"climate"`
	AvgTempF  int    `json:"avg_temp_f"`
	SunnyDays int    `json:"sunny_days"`
	Humidity  int    `json:"humidity"`
}

// Location содержит сравнительные метрики одной локации
type Location struct {
	Weather           Weather `json:"weather_info"`
	Name              string  `json:"location_name"`
	CostOfLivingIndex float64 `json:"cost_of_living_index"`
	HousingCostIndex  float64 `json:"housing_cost_index"`
	SafetyIndex       float64 `json:"safety_index"`
	JobMarketScore    float64 `json:"job_market_score"`
	EducationScore    float64 `json:"education_score"`
	HealthcareScore   float64 `json:"healthcare_score"`
	Population        int     `json:"population"`
	MedianIncome      int     `json:"median_income"`
}

// HousingTypeShare is a percentage share of one housing type
type HousingTypeShare struct {
	Type    string `json:"type"`
	Percent int    `json:"percent"`
}

// Housing содержит показатели рынка жилья локации
type Housing struct {
	MarketTrend     string             `json:"market_trend"`
	PopularAreas    []string           `json:"popular_areas"`
	HousingTypes    []HousingTypeShare `json:"housing_types"`
	MedianHomePrice int                `json:"median_home_price"`
	MedianRent      int                `json:"median_rent"`
	PricePerSqft    int                `json:"price_per_sqft"`
}

var phoenix = Location{
	Name:              "Phoenix, Arizona",
	CostOfLivingIndex: 98.2,
	HousingCostIndex:  89.5,
	SafetyIndex:       6.8,
	Weather: Weather{
		AvgTempF:  75,
		SunnyDays: 299,
		Humidity:  38,
		Climate:   "Desert",
	},
	JobMarketScore:  7.2,
	EducationScore:  6.5,
	HealthcareScore: 7.1,
	Population:      1608139,
	MedianIncome:    62055,
}

var peakDistrict = Location{
	Name:              "Peak District, UK",
	CostOfLivingIndex: 112.8,
	HousingCostIndex:  125.3,
	SafetyIndex:       8.9,
	Weather: Weather{
		AvgTempF:  48,
		SunnyDays: 120,
		Humidity:  78,
		Climate:   "Temperate Oceanic",
	},
	JobMarketScore:  6.8,
	EducationScore:  8.9,
	HealthcareScore: 9.2,
	Population:      38000,
	MedianIncome:    35000,
}

var phoenixHousing = Housing{
	MedianHomePrice: 450000,
	MedianRent:      1650,
	PricePerSqft:    185,
	MarketTrend:     "stable",
	PopularAreas:    []string{"Scottsdale", "Tempe", "Chandler", "Gilbert", "Glendale"},
	HousingTypes: []HousingTypeShare{
		{Type: "single_family", Percent: 65},
		{Type: "condos", Percent: 20},
		{Type: "apartments", Percent: 15},
	},
}

var peakDistrictHousing = Housing{
	MedianHomePrice: 320000,
	MedianRent:      950,
	PricePerSqft:    240,
	MarketTrend:     "rising",
	PopularAreas:    []string{"Buxton", "Bakewell", "Matlock", "Hathersage", "Castleton"},
	HousingTypes: []HousingTypeShare{
		{Type: "cottages", Percent: 45},
		{Type: "terraced", Percent: 30},
		{Type: "detached", Percent: 25},
	},
}
