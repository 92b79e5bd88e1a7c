package dto

import (
	"time"

	"github.com/lbertrand/garage-api/internal/domain/entity"
)

// ODRSortFields liste blanche de tri pour les listings d'ODR.
var ODRSortFields = map[string]string{
	"numero":    "numero",
	"statut":    "statut",
	"createdAt": "created_at",
}

// CreateODRRequest payload de création d'un ordre de réparation.
// DevisID est optionnel ; s'il est fourni le devis doit être ACCEPTE.
type CreateODRRequest struct {
	ClientID    string  `json:"clientId" validate:"required,uuid"`
	VehiculeID  string  `json:"vehiculeId" validate:"required,uuid"`
	DevisID     *string `json:"devisId" validate:"omitempty,uuid"`
	Description string  `json:"description" validate:"required,max=500"`
}

// UpdateODRRequest mise à jour partielle d'un ODR en cours.
type UpdateODRRequest struct {
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// UpdateODRStatutRequest transition de statut (PUT /odr/:id/status).
type UpdateODRStatutRequest struct {
	Statut string `json:"statut" validate:"required,oneof=TERMINE ANNULE"`
}

// ODRResponse représentation API d'un ordre de réparation.
type ODRResponse struct {
	ID          string    `json:"id"`
	Numero      string    `json:"numero"`
	ClientID    string    `json:"clientId"`
	VehiculeID  string    `json:"vehiculeId"`
	DevisID     *string   `json:"devisId,omitempty"`
	Description string    `json:"description"`
	Statut      string    `json:"statut"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ODRStatsResponse répartition par statut (GET /odr/stats).
type ODRStatsResponse struct {
	Total    int `json:"total"`
	EnCours  int `json:"enCours"`
	Termines int `json:"termines"`
	Annules  int `json:"annules"`
}

// ODRFromEntity convertit l'entité en réponse API.
func ODRFromEntity(o *entity.OrdreReparation) *ODRResponse {
	return &ODRResponse{
		ID:          o.ID,
		Numero:      o.Numero,
		ClientID:    o.ClientID,
		VehiculeID:  o.VehiculeID,
		DevisID:     o.DevisID,
		Description: o.Description,
		Statut:      o.Statut,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ODRsFromEntities convertit une page d'entités.
func ODRsFromEntities(list []*entity.OrdreReparation) []*ODRResponse {
	out := make([]*ODRResponse, 0, len(list))
	for _, o := range list {
		out = append(out, ODRFromEntity(o))
	}
	return out
}
