package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

func TestNewMacros_ValoresValidos(t *testing.T) {
	m, err := valueobject.NewMacros(200, 150, 67)
	require.NoError(t, err)

	assert.Equal(t, 200.0, m.Carbs())
	assert.Equal(t, 150.0, m.Protein())
	assert.Equal(t, 67.0, m.Fat())
}

func TestNewMacros_ForaDosTetos(t *testing.T) {
	cases := []struct {
		name                string
		carbs, protein, fat float64
	}{
		{"carboidrato negativo", -1, 0, 0},
		{"proteína negativa", 0, -1, 0},
		{"gordura negativa", 0, 0, -1},
		{"carboidrato acima de 1000", 1001, 0, 0},
		{"proteína acima de 500", 0, 501, 0},
		{"gordura acima de 500", 0, 0, 501},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := valueobject.NewMacros(tc.carbs, tc.protein, tc.fat)
			require.Error(t, err)
			assert.True(t, domain.IsDomainError(err))
		})
	}
}

func TestMacros_TotalCalories(t *testing.T) {
	m, err := valueobject.NewMacros(100, 50, 20)
	require.NoError(t, err)
	// 100*4 + 50*4 + 20*9 = 780
	assert.Equal(t, 780.0, m.TotalCalories())
}

// TestMacrosFromCaloriesAndPercentages_Vetor2000 é o vetor de referência da
// conversão calorias -> gramas. A gordura arredonda 66.67 para 67, então o
// total reconstruído deriva para 2003 kcal: erro de arredondamento esperado
// da conversão independente por campo, não bug.
func TestMacrosFromCaloriesAndPercentages_Vetor2000(t *testing.T) {
	m, err := valueobject.MacrosFromCaloriesAndPercentages(2000, 40, 30, 30)
	require.NoError(t, err)

	assert.Equal(t, 200.0, m.Carbs())
	assert.Equal(t, 150.0, m.Protein())
	assert.Equal(t, 67.0, m.Fat())
	assert.InDelta(t, 2000, m.TotalCalories(), 5, "total reconstruído pode derivar pelo arredondamento independente")
}

func TestMacrosFromCaloriesAndPercentages_PercentuaisNaoSomam100(t *testing.T) {
	_, err := valueobject.MacrosFromCaloriesAndPercentages(2000, 40, 30, 20)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err))
}

func TestMacrosFromCaloriesAndPercentages_ToleranciaDeSoma(t *testing.T) {
	// 40 + 30.005 + 29.995 = 100 dentro da tolerância de 0.01
	_, err := valueobject.MacrosFromCaloriesAndPercentages(2000, 40, 30.005, 29.995)
	assert.NoError(t, err)
}

func TestMacros_EqualsPorValor(t *testing.T) {
	a, err := valueobject.NewMacros(10, 20, 30)
	require.NoError(t, err)
	b, err := valueobject.NewMacros(10, 20, 30)
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
}
