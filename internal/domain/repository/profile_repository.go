package repository

import "github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"

// ClientProfileRepository porta de persistência do perfil de cliente (1:1 com User).
type ClientProfileRepository interface {
	Create(profile *entity.ClientProfile) error
	FindByUserID(userID string) (*entity.ClientProfile, error)
	Update(profile *entity.ClientProfile) error
}

// NutritionistProfileRepository porta de persistência do perfil de nutricionista.
type NutritionistProfileRepository interface {
	Create(profile *entity.NutritionistProfile) error
	FindByUserID(userID string) (*entity.NutritionistProfile, error)
	Update(profile *entity.NutritionistProfile) error
}
