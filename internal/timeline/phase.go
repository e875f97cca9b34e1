package timeline

// Названия фаз переезда. Совпадают с категориями шагов каталога.
const (
	PhasePlanning   = "Planning"
	PhaseVisaLegal  = "Visa & Legal"
	PhaseEmployment = "Employment"
	PhaseHousing    = "Housing"
	PhaseFinancial  = "Financial"
	PhaseLogistics  = "Logistics"
	PhaseUSExit     = "US Exit"
	PhaseUKArrival  = "UK Arrival"
	PhaseSettlement = "Settlement"
)

// phaseBound is an inclusive upper bound on step id for a phase
type phaseBound struct {
	name  string
	maxID int
}

var phaseLadder = []phaseBound{
	{PhasePlanning, 3},
	{PhaseVisaLegal, 7},
	{PhaseEmployment, 11},
	{PhaseHousing, 15},
	{PhaseFinancial, 19},
	{PhaseLogistics, 23},
	{PhaseUSExit, 26},
	{PhaseUKArrival, 30},
}

// CurrentPhase возвращает фазу по максимальному выполненному шагу.
// Это приближение "самого дальнего шага", а не фаза с наибольшим покрытием:
// {30, 4} дает "UK Arrival".
func CurrentPhase(completed Set) string {
	maxID, ok := completed.Max()
	if !ok {
		return PhasePlanning
	}
	return PhaseForStep(maxID)
}

// PhaseForStep maps a single step id onto the phase ladder
func PhaseForStep(id int) string {
	for _, b := range phaseLadder {
		if id <= b.maxID {
			return b.name
		}
	}
	return PhaseSettlement
}
