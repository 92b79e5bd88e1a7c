package dto

import (
	"time"

	"github.com/lbertrand/garage-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DevisSortFields liste blanche de tri pour les listings de devis.
var DevisSortFields = map[string]string{
	"numero":       "numero",
	"statut":       "statut",
	"dateValidite": "date_validite",
	"totalTTC":     "total_ttc",
	"createdAt":    "created_at",
}

// LigneDevisRequest une ligne du devis.
type LigneDevisRequest struct {
	Designation     string          `json:"designation" validate:"required,max=200"`
	PrixUnitaireTTC decimal.Decimal `json:"prixUnitaireTTC"`
	Quantite        int             `json:"quantite" validate:"required,min=1"`
	PrestationID    *string         `json:"prestationId" validate:"omitempty,uuid"`
}

// CreateDevisRequest payload de création d'un devis.
type CreateDevisRequest struct {
	ClientID           string              `json:"clientId" validate:"required,uuid"`
	VehiculeID         string              `json:"vehiculeId" validate:"required,uuid"`
	Famille            string              `json:"famille" validate:"required,oneof=CARROSSERIE MECANIQUE"`
	DateValidite       time.Time           `json:"dateValidite" validate:"required"`
	ConditionsPaiement string              `json:"conditionsPaiement" validate:"omitempty,max=200"`
	AcomptePourcent    int                 `json:"acomptePourcent" validate:"omitempty,min=0,max=100"`
	ModesPaiement      []string            `json:"modesPaiement" validate:"omitempty,dive,oneof=CB ESPECES CHEQUE VIREMENT"`
	Lignes             []LigneDevisRequest `json:"lignes" validate:"required,min=1,dive"`
}

// UpdateDevisRequest mise à jour partielle d'un devis EN_ATTENTE.
// Lignes, si présent, remplace l'intégralité des lignes existantes.
type UpdateDevisRequest struct {
	DateValidite       *time.Time          `json:"dateValidite"`
	ConditionsPaiement *string             `json:"conditionsPaiement" validate:"omitempty,max=200"`
	AcomptePourcent    *int                `json:"acomptePourcent" validate:"omitempty,min=0,max=100"`
	ModesPaiement      []string            `json:"modesPaiement" validate:"omitempty,dive,oneof=CB ESPECES CHEQUE VIREMENT"`
	Lignes             []LigneDevisRequest `json:"lignes" validate:"omitempty,min=1,dive"`
}

// UpdateDevisStatutRequest transition de statut (PUT /devis/:id/status).
type UpdateDevisStatutRequest struct {
	Statut string `json:"statut" validate:"required,oneof=ACCEPTE REFUSE EXPIRE"`
}

// LigneDevisResponse une ligne du devis côté API.
type LigneDevisResponse struct {
	ID              string          `json:"id"`
	Designation     string          `json:"designation"`
	PrixUnitaireTTC decimal.Decimal `json:"prixUnitaireTTC"`
	Quantite        int             `json:"quantite"`
	PrestationID    *string         `json:"prestationId,omitempty"`
}

// DevisResponse représentation API d'un devis.
type DevisResponse struct {
	ID                 string               `json:"id"`
	Numero             string               `json:"numero"`
	ClientID           string               `json:"clientId"`
	VehiculeID         string               `json:"vehiculeId"`
	Famille            string               `json:"famille"`
	Statut             string               `json:"statut"`
	DateValidite       time.Time            `json:"dateValidite"`
	ConditionsPaiement string               `json:"conditionsPaiement,omitempty"`
	AcomptePourcent    int                  `json:"acomptePourcent"`
	ModesPaiement      []string             `json:"modesPaiement"`
	TotalTTC           decimal.Decimal      `json:"totalTTC"`
	Lignes             []LigneDevisResponse `json:"lignes"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}

// DevisStatsResponse répartition par statut (GET /devis/stats).
type DevisStatsResponse struct {
	Total     int `json:"total"`
	EnAttente int `json:"enAttente"`
	Acceptes  int `json:"acceptes"`
	Refuses   int `json:"refuses"`
	Expires   int `json:"expires"`
}

// DevisFromEntity convertit l'entité en réponse API.
func DevisFromEntity(d *entity.Devis) *DevisResponse {
	lignes := make([]LigneDevisResponse, 0, len(d.Lignes))
	for _, l := range d.Lignes {
		lignes = append(lignes, LigneDevisResponse{
			ID:              l.ID,
			Designation:     l.Designation,
			PrixUnitaireTTC: l.PrixUnitaireTTC,
			Quantite:        l.Quantite,
			PrestationID:    l.PrestationID,
		})
	}
	return &DevisResponse{
		ID:                 d.ID,
		Numero:             d.Numero,
		ClientID:           d.ClientID,
		VehiculeID:         d.VehiculeID,
		Famille:            d.Famille,
		Statut:             d.Statut,
		DateValidite:       d.DateValidite,
		ConditionsPaiement: d.ConditionsPaiement,
		AcomptePourcent:    d.AcomptePourcent,
		ModesPaiement:      d.ModesPaiement,
		TotalTTC:           d.TotalTTC,
		Lignes:             lignes,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// DevisListFromEntities convertit une page d'entités.
func DevisListFromEntities(list []*entity.Devis) []*DevisResponse {
	out := make([]*DevisResponse, 0, len(list))
	for _, d := range list {
		out = append(out, DevisFromEntity(d))
	}
	return out
}
