package dto

import (
	"time"

	"github.com/lbertrand/garage-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PrestationSortFields liste blanche de tri pour le catalogue.
var PrestationSortFields = map[string]string{
	"nom":       "nom",
	"famille":   "famille",
	"prixBase":  "prix_base",
	"createdAt": "created_at",
}

// CreatePrestationRequest payload de création d'une prestation.
// PrixBase doit être strictement positif (vérifié par le service, la
// contrainte n'étant pas exprimable en tag sur un decimal).
type CreatePrestationRequest struct {
	Nom         string          `json:"nom" validate:"required,min=2,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Famille     string          `json:"famille" validate:"required,oneof=CARROSSERIE MECANIQUE"`
	PrixBase    decimal.Decimal `json:"prixBase"`
}

// UpdatePrestationRequest payload de mise à jour partielle.
type UpdatePrestationRequest struct {
	Nom         *string          `json:"nom" validate:"omitempty,min=2,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Famille     *string          `json:"famille" validate:"omitempty,oneof=CARROSSERIE MECANIQUE"`
	PrixBase    *decimal.Decimal `json:"prixBase"`
}

// PrestationResponse représentation API d'une prestation.
type PrestationResponse struct {
	ID          string          `json:"id"`
	Nom         string          `json:"nom"`
	Description string          `json:"description,omitempty"`
	Famille     string          `json:"famille"`
	PrixBase    decimal.Decimal `json:"prixBase"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PrestationStatsResponse agrégats renvoyés par GET /prestations/stats.
type PrestationStatsResponse struct {
	Total       int `json:"total"`
	Carrosserie int `json:"carrosserie"`
	Mecanique   int `json:"mecanique"`
}

// PrestationFromEntity convertit l'entité en réponse API.
func PrestationFromEntity(p *entity.Prestation) *PrestationResponse {
	return &PrestationResponse{
		ID:          p.ID,
		Nom:         p.Nom,
		Description: p.Description,
		Famille:     p.Famille,
		PrixBase:    p.PrixBase,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PrestationsFromEntities convertit une page d'entités.
func PrestationsFromEntities(list []*entity.Prestation) []*PrestationResponse {
	out := make([]*PrestationResponse, 0, len(list))
	for _, p := range list {
		out = append(out, PrestationFromEntity(p))
	}
	return out
}
