package domain

// Allergen identifies one pollen component. The string values are part of
// the export contract.
type Allergen string

const (
	AllergenAlder   Allergen = "alder"
	AllergenBirch   Allergen = "birch"
	AllergenGrass   Allergen = "grass"
	AllergenMugwort Allergen = "mugwort"
	AllergenOlive   Allergen = "olive"
	AllergenRagweed Allergen = "ragweed"
)

// Allergens lists every supported allergen in display order.
var Allergens = []Allergen{
	AllergenAlder,
	AllergenBirch,
	AllergenGrass,
	AllergenMugwort,
	AllergenOlive,
	AllergenRagweed,
}

var allergenNames = map[Allergen]string{
	AllergenAlder:   "Alder",
	AllergenBirch:   "Birch",
	AllergenGrass:   "Grass",
	AllergenMugwort: "Mugwort",
	AllergenOlive:   "Olive",
	AllergenRagweed: "Ragweed",
}

// pollenLevels maps concentration (grains/m³) to a risk level. The upper
// bound of each level is exclusive; concentrations past the last bound are
// "Very high".
var pollenLevels = []struct {
	upperBound float64
	name       string
	color      int64
}{
	{1, "None", 0xFF808080},
	{26, "Very low", 0xFF50CCAA},
	{51, "Low", 0xFFA3D765},
	{101, "Moderate", 0xFFF0E641},
	{201, "High", 0xFFFF9632},
	{0, "Very high", 0xFFFF5050},
}

// AllergenName returns the English display name of an allergen.
func AllergenName(a Allergen) string {
	return allergenNames[a]
}

// AllergenConcentration returns the reported concentration for an allergen,
// or nil when the source did not report it.
func AllergenConcentration(p Pollen, a Allergen) *float64 {
	switch a {
	case AllergenAlder:
		return p.Alder
	case AllergenBirch:
		return p.Birch
	case AllergenGrass:
		return p.Grass
	case AllergenMugwort:
		return p.Mugwort
	case AllergenOlive:
		return p.Olive
	case AllergenRagweed:
		return p.Ragweed
	default:
		return nil
	}
}

// PollenIsValid reports whether at least one allergen was reported.
func PollenIsValid(p Pollen) bool {
	return len(ValidAllergens(p)) > 0
}

// ValidAllergens returns the allergens the source actually reported,
// in display order.
func ValidAllergens(p Pollen) []Allergen {
	var valid []Allergen
	for _, a := range Allergens {
		if AllergenConcentration(p, a) != nil {
			valid = append(valid, a)
		}
	}
	return valid
}

// AllergenIndexName maps a concentration to its risk level name.
func AllergenIndexName(concentration float64) string {
	return pollenLevel(concentration).name
}

// AllergenColor maps a concentration to its risk level display color.
func AllergenColor(concentration float64) int64 {
	return pollenLevel(concentration).color
}

func pollenLevel(concentration float64) struct {
	upperBound float64
	name       string
	color      int64
} {
	for _, level := range pollenLevels[:len(pollenLevels)-1] {
		if concentration < level.upperBound {
			return level
		}
	}
	return pollenLevels[len(pollenLevels)-1]
}
