package repository

import "github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"

// LinkRepository porta de persistência do vínculo cliente-nutricionista.
type LinkRepository interface {
	Create(link *entity.ClientNutritionistLink) error
	FindByID(id string) (*entity.ClientNutritionistLink, error)
	Update(link *entity.ClientNutritionistLink) error
	// FindByClientAndNutritionist busca o vínculo do par nos status dados
	// (o mais recente, se houver mais de um encerrado).
	FindByClientAndNutritionist(clientID, nutritionistID string, statuses []entity.LinkStatus) (*entity.ClientNutritionistLink, error)
	ListByClient(clientID string) ([]*entity.ClientNutritionistLink, error)
	ListByNutritionist(nutritionistID string) ([]*entity.ClientNutritionistLink, error)
}
