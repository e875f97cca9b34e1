package refdata

// ClimateChange is the absolute weather delta between two locations
type ClimateChange struct {
	TemperatureChange int `json:"temperature_change"`
	HumidityChange    int `json:"humidity_change"`
}

// ComparisonMetrics содержит производные показатели сравнения
type ComparisonMetrics struct {
	ClimateChange            ClimateChange `json:"climate_change"`
	CostDifferencePercent    float64       `json:"cost_difference_percent"`
	HousingDifferencePercent float64       `json:"housing_difference_percent"`
	SafetyImprovement        float64       `json:"safety_improvement"`
}

// Comparison is the full comparison payload returned to clients and persisted as a snapshot
type Comparison struct {
	FromLocation      Location          `json:"from_location"`
	ToLocation        Location          `json:"to_location"`
	RelocationTips    []string          `json:"relocation_tips"`
	ComparisonMetrics ComparisonMetrics `json:"comparison_metrics"`
}

var relocationTips = []string{
	"Cost of living is approximately 15% higher in Peak District",
	"Housing costs are significantly higher (40% increase)",
	"Much safer environment with higher safety index",
	"Cooler, more humid climate - prepare for weather change",
	"Excellent healthcare and education systems",
	"Consider visa requirements for UK relocation",
}

// Compare считает разницу между двумя локациями.
// Стоимость жизни и жилья - в процентах относительно from, остальное - абсолютная разница.
func Compare(from, to Location) ComparisonMetrics {
	return ComparisonMetrics{
		CostDifferencePercent:    percentDelta(from.CostOfLivingIndex, to.CostOfLivingIndex),
		HousingDifferencePercent: percentDelta(from.HousingCostIndex, to.HousingCostIndex),
		SafetyImprovement:        to.SafetyIndex - from.SafetyIndex,
		ClimateChange: ClimateChange{
			TemperatureChange: to.Weather.AvgTempF - from.Weather.AvgTempF,
			HumidityChange:    to.Weather.Humidity - from.Weather.Humidity,
		},
	}
}

func percentDelta(from, to float64) float64 {
	if from == 0 {
		return 0
	}
	return (to - from) / from * 100
}
