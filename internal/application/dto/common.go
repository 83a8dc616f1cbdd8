package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MacrosInput entrada de macros em gramas.
type MacrosInput struct {
	CarbsGrams   float64 `json:"carbs_grams" validate:"min=0,max=1000"`
	ProteinGrams float64 `json:"protein_grams" validate:"min=0,max=500"`
	FatGrams     float64 `json:"fat_grams" validate:"min=0,max=500"`
}

// MacrosResponse saída de macros com o total calórico derivado.
type MacrosResponse struct {
	CarbsGrams    float64 `json:"carbs_grams"`
	ProteinGrams  float64 `json:"protein_grams"`
	FatGrams      float64 `json:"fat_grams"`
	TotalCalories float64 `json:"total_calories"`
}
