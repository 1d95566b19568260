package routine

import "strings"

// Category is a functional product class the planner knows how to place.
type Category string

const (
	Cleanser       Category = "cleanser"
	Toner          Category = "toner"
	Serum          Category = "serum"
	Moisturizer    Category = "moisturizer"
	Sunscreen      Category = "sunscreen"
	NightTreatment Category = "night-treatment"
)

// Step order for each half of the day.
var (
	MorningSteps = []Category{Cleanser, Serum, Moisturizer, Sunscreen}
	NightSteps   = []Category{Cleanser, Toner, NightTreatment, Moisturizer}
)

// labels maps lower-cased category labels to their category.
var labels = map[string]Category{
	"cleanser":        Cleanser,
	"toner":           Toner,
	"serum":           Serum,
	"moisturizer":     Moisturizer,
	"sunscreen":       Sunscreen,
	"night-treatment": NightTreatment,
	"night treatment": NightTreatment,
	"treatment":       NightTreatment,
}

// ParseCategory resolves a product's category label case-insensitively.
// Unknown labels report false.
func ParseCategory(label string) (Category, bool) {
	c, ok := labels[strings.ToLower(strings.TrimSpace(label))]
	return c, ok
}
