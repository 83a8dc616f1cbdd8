package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/JanderLiborio20/softfit-sub000/internal/domain"
)

// crnRegex CRN numérico de 4 a 6 dígitos.
var crnRegex = regexp.MustCompile(`^\d{4,6}$`)

// brazilianStates UFs válidas para o registro de CRN.
var brazilianStates = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true,
	"DF": true, "ES": true, "GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true, "PE": true, "PI": true,
	"RJ": true, "RN": true, "RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

const (
	nutritionistFullNameMin = 5
	nutritionistBioMax      = 500

	// MaxActiveClients teto de clientes ativos por nutricionista.
	MaxActiveClients = 100
)

// NutritionistProfile perfil profissional do nutricionista. O contador de
// clientes ativos acompanha o ciclo de vida dos vínculos.
type NutritionistProfile struct {
	userID             string
	crn                string
	crnState           string
	fullName           string
	bio                string
	specialties        []string
	isVerified         bool
	activeClientsCount int
	createdAt          time.Time
	updatedAt          time.Time
}

// NewNutritionistProfile cria o perfil profissional (uma vez por nutricionista).
func NewNutritionistProfile(userID, crn, crnState, fullName, bio string, specialties []string, now time.Time) (*NutritionistProfile, error) {
	np := &NutritionistProfile{
		userID:      userID,
		crn:         strings.TrimSpace(crn),
		crnState:    strings.ToUpper(strings.TrimSpace(crnState)),
		fullName:    strings.TrimSpace(fullName),
		bio:         strings.TrimSpace(bio),
		specialties: append([]string(nil), specialties...),
		createdAt:   now,
		updatedAt:   now,
	}
	if err := np.validate(); err != nil {
		return nil, err
	}
	return np, nil
}

// ReconstituteNutritionistProfile reidrata o perfil da persistência,
// revalidando os invariantes.
func ReconstituteNutritionistProfile(userID, crn, crnState, fullName, bio string, specialties []string, isVerified bool, activeClientsCount int, createdAt, updatedAt time.Time) (*NutritionistProfile, error) {
	np := &NutritionistProfile{
		userID:             userID,
		crn:                strings.TrimSpace(crn),
		crnState:           strings.ToUpper(strings.TrimSpace(crnState)),
		fullName:           strings.TrimSpace(fullName),
		bio:                strings.TrimSpace(bio),
		specialties:        append([]string(nil), specialties...),
		isVerified:         isVerified,
		activeClientsCount: activeClientsCount,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
	if err := np.validate(); err != nil {
		return nil, err
	}
	return np, nil
}

func (n *NutritionistProfile) validate() error {
	if n.userID == "" {
		return domain.NewDomainError("userId é obrigatório")
	}
	if !crnRegex.MatchString(n.crn) {
		return domain.NewDomainError("CRN deve ter de 4 a 6 dígitos")
	}
	if !brazilianStates[n.crnState] {
		return domain.NewDomainError("UF do CRN inválida: %s", n.crnState)
	}
	if len(n.fullName) < nutritionistFullNameMin {
		return domain.NewDomainError("nome completo deve ter pelo menos %d caracteres", nutritionistFullNameMin)
	}
	if len(n.bio) > nutritionistBioMax {
		return domain.NewDomainError("bio deve ter no máximo %d caracteres", nutritionistBioMax)
	}
	if n.activeClientsCount < 0 || n.activeClientsCount > MaxActiveClients {
		return domain.NewDomainError("contador de clientes ativos deve estar entre 0 e %d", MaxActiveClients)
	}
	return nil
}

// IncrementActiveClients incrementa o contador na aceitação de um vínculo.
// Falha quando o teto de %d clientes já foi atingido.
func (n *NutritionistProfile) IncrementActiveClients(now time.Time) (*NutritionistProfile, error) {
	if n.activeClientsCount >= MaxActiveClients {
		return nil, domain.NewBusinessRuleError("nutricionista já atingiu o limite de %d clientes ativos", MaxActiveClients)
	}
	clone := n.clone()
	clone.activeClientsCount++
	clone.updatedAt = now
	return clone, nil
}

// DecrementActiveClients decrementa o contador no encerramento de um vínculo ativo.
func (n *NutritionistProfile) DecrementActiveClients(now time.Time) (*NutritionistProfile, error) {
	if n.activeClientsCount <= 0 {
		return nil, domain.NewBusinessRuleError("contador de clientes ativos já está em zero")
	}
	clone := n.clone()
	clone.activeClientsCount--
	clone.updatedAt = now
	return clone, nil
}

// Verify marca o perfil como verificado (validação administrativa do CRN).
func (n *NutritionistProfile) Verify(now time.Time) *NutritionistProfile {
	clone := n.clone()
	clone.isVerified = true
	clone.updatedAt = now
	return clone
}

// UpdateInfo substitui nome, bio e especialidades, revalidando.
func (n *NutritionistProfile) UpdateInfo(fullName, bio string, specialties []string, now time.Time) (*NutritionistProfile, error) {
	clone := n.clone()
	clone.fullName = strings.TrimSpace(fullName)
	clone.bio = strings.TrimSpace(bio)
	clone.specialties = append([]string(nil), specialties...)
	clone.updatedAt = now
	if err := clone.validate(); err != nil {
		return nil, err
	}
	return clone, nil
}

func (n *NutritionistProfile) clone() *NutritionistProfile {
	c := *n
	c.specialties = append([]string(nil), n.specialties...)
	return &c
}

func (n *NutritionistProfile) UserID() string          { return n.userID }
func (n *NutritionistProfile) CRN() string             { return n.crn }
func (n *NutritionistProfile) CRNState() string        { return n.crnState }
func (n *NutritionistProfile) FullName() string        { return n.fullName }
func (n *NutritionistProfile) Bio() string             { return n.bio }
func (n *NutritionistProfile) IsVerified() bool        { return n.isVerified }
func (n *NutritionistProfile) ActiveClientsCount() int { return n.activeClientsCount }
func (n *NutritionistProfile) CreatedAt() time.Time    { return n.createdAt }
func (n *NutritionistProfile) UpdatedAt() time.Time    { return n.updatedAt }

// Specialties devolve cópia defensiva da lista de especialidades.
func (n *NutritionistProfile) Specialties() []string {
	return append([]string(nil), n.specialties...)
}
