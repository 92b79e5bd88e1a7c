package dto

import (
	"time"

	"github.com/lbertrand/garage-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// FactureSortFields liste blanche de tri pour les listings de factures.
var FactureSortFields = map[string]string{
	"numero":         "numero",
	"statutPaiement": "statut_paiement",
	"totalTTC":       "total_ttc",
	"dateEcheance":   "date_echeance",
	"createdAt":      "created_at",
}

// CreateFactureRequest payload de création d'une facture.
// TotalTTC est repris du devis référencé s'il est omis.
type CreateFactureRequest struct {
	ClientID     string          `json:"clientId" validate:"required,uuid"`
	ODRID        *string         `json:"odrId" validate:"omitempty,uuid"`
	DevisID      *string         `json:"devisId" validate:"omitempty,uuid"`
	TotalTTC     decimal.Decimal `json:"totalTTC"`
	DateEcheance time.Time       `json:"dateEcheance" validate:"required"`
}

// UpdateFactureRequest mise à jour partielle d'une facture non soldée.
type UpdateFactureRequest struct {
	TotalTTC     *decimal.Decimal `json:"totalTTC"`
	DateEcheance *time.Time       `json:"dateEcheance"`
}

// UpdatePaiementRequest transition de statut de paiement
// (PUT /factures/:id/payment).
type UpdatePaiementRequest struct {
	StatutPaiement string `json:"statutPaiement" validate:"required,oneof=PAYEE PARTIELLEMENT_PAYEE IMPAYEE ANNULEE"`
}

// FactureResponse représentation API d'une facture.
type FactureResponse struct {
	ID             string          `json:"id"`
	Numero         string          `json:"numero"`
	ClientID       string          `json:"clientId"`
	ODRID          *string         `json:"odrId,omitempty"`
	DevisID        *string         `json:"devisId,omitempty"`
	TotalTTC       decimal.Decimal `json:"totalTTC"`
	StatutPaiement string          `json:"statutPaiement"`
	DateEcheance   time.Time       `json:"dateEcheance"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// FactureStatsResponse répartition par statut de paiement (GET /factures/stats).
type FactureStatsResponse struct {
	Total         int             `json:"total"`
	EnAttente     int             `json:"enAttente"`
	Payees        int             `json:"payees"`
	Partielles    int             `json:"partielles"`
	Impayees      int             `json:"impayees"`
	Annulees      int             `json:"annulees"`
	MontantImpaye decimal.Decimal `json:"montantImpaye"`
}

// FactureFromEntity convertit l'entité en réponse API.
func FactureFromEntity(f *entity.Facture) *FactureResponse {
	return &FactureResponse{
		ID:             f.ID,
		Numero:         f.Numero,
		ClientID:       f.ClientID,
		ODRID:          f.ODRID,
		DevisID:        f.DevisID,
		TotalTTC:       f.TotalTTC,
		StatutPaiement: f.StatutPaiement,
		DateEcheance:   f.DateEcheance,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

// FacturesFromEntities convertit une page d'entités.
func FacturesFromEntities(list []*entity.Facture) []*FactureResponse {
	out := make([]*FactureResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FactureFromEntity(f))
	}
	return out
}
