package dto

import "time"

// AnalyzeMealRequest entrada da análise de refeição por IA: foto (base64),
// transcrição de áudio ou descrição textual.
type AnalyzeMealRequest struct {
	ImageBase64     string `json:"image_base64,omitempty"`
	ImageMIMEType   string `json:"image_mime_type,omitempty"`
	AudioTranscript string `json:"audio_transcript,omitempty"`
	Description     string `json:"description,omitempty"`
}

// MealAnalysisDTO resultado da análise de IA, ainda não persistido.
type MealAnalysisDTO struct {
	MealName   string      `json:"meal_name"`
	Foods      []string    `json:"foods"`
	Calories   float64     `json:"calories"`
	Macros     MacrosInput `json:"macros"`
	Confidence float64     `json:"confidence"`
}

// ConfirmMealRequest confirmação da refeição (pós-análise ou manual).
type ConfirmMealRequest struct {
	Name       string      `json:"name" validate:"required"`
	ImageURL   string      `json:"image_url,omitempty"`
	AudioURL   string      `json:"audio_url,omitempty"`
	Foods      []string    `json:"foods"`
	Calories   float64     `json:"calories" validate:"min=0,max=5000"`
	Macros     MacrosInput `json:"macros"`
	MealTime   time.Time   `json:"meal_time" validate:"required"`
	Confidence float64     `json:"confidence" validate:"min=0,max=100"`
}

// UpdateMealRequest edição de refeição dentro da janela de 7 dias.
type UpdateMealRequest struct {
	Name     string      `json:"name" validate:"required"`
	Foods    []string    `json:"foods"`
	Calories float64     `json:"calories" validate:"min=0,max=5000"`
	Macros   MacrosInput `json:"macros"`
	MealTime time.Time   `json:"meal_time" validate:"required"`
}

// MealResponse saída de refeição com os campos derivados de idade.
type MealResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Name        string         `json:"name"`
	ImageURL    string         `json:"image_url,omitempty"`
	AudioURL    string         `json:"audio_url,omitempty"`
	Foods       []string       `json:"foods"`
	Calories    float64        `json:"calories"`
	Macros      MacrosResponse `json:"macros"`
	MealTime    time.Time      `json:"meal_time"`
	Confidence  float64        `json:"confidence"`
	CanBeEdited bool           `json:"can_be_edited"`
	AgeInDays   int            `json:"age_in_days"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// DailySummaryResponse consumo do dia contra as metas do perfil.
type DailySummaryResponse struct {
	Date              string         `json:"date"`
	TotalCalories     float64        `json:"total_calories"`
	TotalMacros       MacrosResponse `json:"total_macros"`
	CaloriesGoal      int            `json:"calories_goal"`
	MacrosGoal        MacrosResponse `json:"macros_goal"`
	RemainingCalories float64        `json:"remaining_calories"`
	HydrationTotalMl  int            `json:"hydration_total_ml"`
	Meals             []MealResponse `json:"meals"`
}
