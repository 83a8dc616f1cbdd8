package dto

import "time"

// OnboardingRequest entrada do onboarding do cliente. Data no formato 2006-01-02.
type OnboardingRequest struct {
	DateOfBirth   string  `json:"date_of_birth" validate:"required"`
	Gender        string  `json:"gender" validate:"required,oneof=male female"`
	HeightCm      float64 `json:"height_cm" validate:"required,min=100,max=250"`
	WeightKg      float64 `json:"weight_kg" validate:"required,min=30,max=300"`
	Goal          string  `json:"goal" validate:"required"`
	ActivityLevel string  `json:"activity_level" validate:"required"`
}

// UpdateProfileRequest atualização parcial do perfil: campos nil mantêm o
// valor atual. Qualquer atualização recalcula as metas sobre os campos mesclados.
type UpdateProfileRequest struct {
	DateOfBirth   *string  `json:"date_of_birth,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	HeightCm      *float64 `json:"height_cm,omitempty"`
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	Goal          *string  `json:"goal,omitempty"`
	ActivityLevel *string  `json:"activity_level,omitempty"`
}

// ManualGoalsRequest override manual das metas diárias.
type ManualGoalsRequest struct {
	DailyCalories int         `json:"daily_calories" validate:"required,min=800,max=5000"`
	Macros        MacrosInput `json:"macros" validate:"required"`
}

// ClientProfileResponse saída do perfil com os valores derivados.
type ClientProfileResponse struct {
	UserID            string         `json:"user_id"`
	DateOfBirth       string         `json:"date_of_birth"`
	Gender            string         `json:"gender"`
	HeightCm          float64        `json:"height_cm"`
	WeightKg          float64        `json:"weight_kg"`
	Goal              string         `json:"goal"`
	ActivityLevel     string         `json:"activity_level"`
	Age               int            `json:"age"`
	BMI               float64        `json:"bmi"`
	DailyCaloriesGoal int            `json:"daily_calories_goal"`
	DailyMacrosGoal   MacrosResponse `json:"daily_macros_goal"`
	IsGoalManuallySet bool           `json:"is_goal_manually_set"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// NutritionistProfileRequest criação do perfil profissional.
type NutritionistProfileRequest struct {
	CRN         string   `json:"crn" validate:"required"`
	CRNState    string   `json:"crn_state" validate:"required,len=2"`
	FullName    string   `json:"full_name" validate:"required,min=5"`
	Bio         string   `json:"bio" validate:"max=500"`
	Specialties []string `json:"specialties"`
}

// UpdateNutritionistInfoRequest atualização dos dados editáveis do perfil
// profissional. CRN e UF são imutáveis após o cadastro.
type UpdateNutritionistInfoRequest struct {
	FullName    string   `json:"full_name" validate:"required,min=5"`
	Bio         string   `json:"bio" validate:"max=500"`
	Specialties []string `json:"specialties"`
}

// NutritionistProfileResponse saída do perfil profissional.
type NutritionistProfileResponse struct {
	UserID             string    `json:"user_id"`
	CRN                string    `json:"crn"`
	CRNState           string    `json:"crn_state"`
	FullName           string    `json:"full_name"`
	Bio                string    `json:"bio"`
	Specialties        []string  `json:"specialties"`
	IsVerified         bool      `json:"is_verified"`
	ActiveClientsCount int       `json:"active_clients_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
