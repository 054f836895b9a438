package usda

import (
	"strings"

	"github.com/foodinfo/backend/internal/domain"
)

// USDA nutrient IDs for the five key nutrients. The API carries two numbering
// schemes: current FDC ids and the legacy nutrient numbers still present on
// older records (also exposed as the string "number" field).
const (
	NutrientIDEnergy  = 1008 // Calories (kcal)
	NutrientIDProtein = 1003 // Protein (g)
	NutrientIDFat     = 1004 // Total lipid (fat) (g)
	NutrientIDCarbs   = 1005 // Carbohydrate, by difference (g)
	NutrientIDFiber   = 1079 // Fiber, total dietary (g)

	LegacyNumberEnergy  = 208
	LegacyNumberProtein = 203
	LegacyNumberFat     = 204
	LegacyNumberCarbs   = 205
	LegacyNumberFiber   = 291
)

// nutrientRule describes, in priority order, how to recognize one target field
// among a record's nutrient entries: exact ids first, then the string nutrient
// numbers, then lowercase name fragments as a last resort. Records differ
// across food categories and sources, so every rule carries all three tiers.
type nutrientRule struct {
	ids      []int
	numbers  []string
	names    []string
	nameVeto []string // a name match is discarded when it also contains one of these
}

// nutrientRules is the fixed priority table driving normalization. The order
// of entries inside each slice is the match priority, highest first.
var nutrientRules = []struct {
	assign func(*domain.NutrientProfile, *float64)
	rule   nutrientRule
}{
	{
		assign: func(p *domain.NutrientProfile, v *float64) { p.Calories = v },
		rule: nutrientRule{
			ids:     []int{NutrientIDEnergy, LegacyNumberEnergy},
			numbers: []string{"208"},
			names:   []string{"energy", "calorie"},
		},
	},
	{
		assign: func(p *domain.NutrientProfile, v *float64) { p.Protein = v },
		rule: nutrientRule{
			ids:     []int{NutrientIDProtein, LegacyNumberProtein},
			numbers: []string{"203"},
			names:   []string{"protein"},
		},
	},
	{
		assign: func(p *domain.NutrientProfile, v *float64) { p.Fat = v },
		rule: nutrientRule{
			ids:      []int{NutrientIDFat, LegacyNumberFat},
			numbers:  []string{"204"},
			names:    []string{"total lipid", "fat"},
			nameVeto: []string{"saturated", "trans"},
		},
	},
	{
		assign: func(p *domain.NutrientProfile, v *float64) { p.Carbs = v },
		rule: nutrientRule{
			ids:     []int{NutrientIDCarbs, LegacyNumberCarbs},
			numbers: []string{"205"},
			names:   []string{"carbohydrate"},
		},
	},
	{
		assign: func(p *domain.NutrientProfile, v *float64) { p.Fiber = v },
		rule: nutrientRule{
			ids:     []int{NutrientIDFiber, LegacyNumberFiber},
			numbers: []string{"291"},
			names:   []string{"fiber", "fibre"},
		},
	},
}

// ExtractNutrients reduces a USDA food record to the five-field profile.
// Fields with no usable entry stay nil; a malformed entry (missing, negative
// or non-numeric value) is skipped rather than failing the lookup, and
// scanning continues down the priority list.
func ExtractNutrients(food *domain.USDAFood) domain.NutrientProfile {
	profile := domain.NutrientProfile{}
	if food == nil {
		return profile
	}

	for _, target := range nutrientRules {
		if v, ok := findNutrient(food.Nutrients, target.rule); ok {
			target.assign(&profile, &v)
		}
	}

	return profile
}

// findNutrient scans the entries once per priority tier and returns the first
// usable value for the rule.
func findNutrient(entries []domain.USDANutrient, rule nutrientRule) (float64, bool) {
	for _, id := range rule.ids {
		for _, entry := range entries {
			if nutrientID(entry) == id {
				if v, ok := usableValue(entry); ok {
					return v, true
				}
			}
		}
	}

	for _, number := range rule.numbers {
		for _, entry := range entries {
			if nutrientNumber(entry) == number {
				if v, ok := usableValue(entry); ok {
					return v, true
				}
			}
		}
	}

	for _, fragment := range rule.names {
		for _, entry := range entries {
			name := strings.ToLower(nutrientName(entry))
			if name == "" || !strings.Contains(name, fragment) {
				continue
			}
			if vetoed(name, rule.nameVeto) {
				continue
			}
			if v, ok := usableValue(entry); ok {
				return v, true
			}
		}
	}

	return 0, false
}

func nutrientID(entry domain.USDANutrient) int {
	if entry.Nutrient != nil && entry.Nutrient.ID != 0 {
		return entry.Nutrient.ID
	}
	return entry.NutrientID
}

func nutrientNumber(entry domain.USDANutrient) string {
	if entry.Nutrient != nil && entry.Nutrient.Number != "" {
		return entry.Nutrient.Number
	}
	return entry.NutrientNumber
}

func nutrientName(entry domain.USDANutrient) string {
	if entry.Nutrient != nil && entry.Nutrient.Name != "" {
		return entry.Nutrient.Name
	}
	return entry.NutrientName
}

func vetoed(name string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(name, f) {
			return true
		}
	}
	return false
}

// usableValue resolves the entry's value across both payload shapes and
// rejects anything that is not a non-negative number.
func usableValue(entry domain.USDANutrient) (float64, bool) {
	v, ok := entry.Amount.Float()
	if !ok {
		v, ok = entry.Value.Float()
	}
	if !ok || v < 0 {
		return 0, false
	}
	return v, true
}
