package valueobject

import (
	"math"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
)

// Tetos por macronutriente (gramas). Generosos de propósito: cortam apenas
// valores absurdos, não dietas extremas.
const (
	maxCarbsGrams   = 1000.0
	maxProteinGrams = 500.0
	maxFatGrams     = 500.0
)

// Calorias por grama de cada macronutriente.
const (
	kcalPerCarbGram    = 4.0
	kcalPerProteinGram = 4.0
	kcalPerFatGram     = 9.0
)

// Macros value object imutável com os três macronutrientes em gramas.
type Macros struct {
	carbs   float64
	protein float64
	fat     float64
}

// NewMacros valida gramas não negativos e os tetos por campo.
func NewMacros(carbs, protein, fat float64) (Macros, error) {
	if carbs < 0 || protein < 0 || fat < 0 {
		return Macros{}, domain.NewDomainError("macros não podem ser negativos")
	}
	if carbs > maxCarbsGrams {
		return Macros{}, domain.NewDomainError("carboidratos devem ser no máximo %.0fg", maxCarbsGrams)
	}
	if protein > maxProteinGrams {
		return Macros{}, domain.NewDomainError("proteína deve ser no máximo %.0fg", maxProteinGrams)
	}
	if fat > maxFatGrams {
		return Macros{}, domain.NewDomainError("gordura deve ser no máximo %.0fg", maxFatGrams)
	}
	return Macros{carbs: carbs, protein: protein, fat: fat}, nil
}

// MacrosFromCaloriesAndPercentages converte calorias em gramas segundo os
// percentuais informados (devem somar 100, tolerância 0.01).
//
// Cada grama é arredondado ao inteiro mais próximo de forma independente, então
// o total calórico reconstruído pode divergir levemente do input. É erro de
// arredondamento esperado, não bug.
func MacrosFromCaloriesAndPercentages(calories, carbsPct, proteinPct, fatPct float64) (Macros, error) {
	if calories < 0 {
		return Macros{}, domain.NewDomainError("calorias não podem ser negativas")
	}
	if carbsPct < 0 || proteinPct < 0 || fatPct < 0 {
		return Macros{}, domain.NewDomainError("percentuais não podem ser negativos")
	}
	if math.Abs(carbsPct+proteinPct+fatPct-100) > 0.01 {
		return Macros{}, domain.NewDomainError("percentuais devem somar 100, recebido %.2f", carbsPct+proteinPct+fatPct)
	}
	carbs := math.Round(calories * carbsPct / 100 / kcalPerCarbGram)
	protein := math.Round(calories * proteinPct / 100 / kcalPerProteinGram)
	fat := math.Round(calories * fatPct / 100 / kcalPerFatGram)
	return NewMacros(carbs, protein, fat)
}

// Carbs gramas de carboidrato.
func (m Macros) Carbs() float64 { return m.carbs }

// Protein gramas de proteína.
func (m Macros) Protein() float64 { return m.protein }

// Fat gramas de gordura.
func (m Macros) Fat() float64 { return m.fat }

// TotalCalories calorias totais: 4 kcal/g para carboidrato e proteína, 9 kcal/g para gordura.
func (m Macros) TotalCalories() float64 {
	return m.carbs*kcalPerCarbGram + m.protein*kcalPerProteinGram + m.fat*kcalPerFatGram
}

// Equals compara por valor.
func (m Macros) Equals(other Macros) bool {
	return m.carbs == other.carbs && m.protein == other.protein && m.fat == other.fat
}
