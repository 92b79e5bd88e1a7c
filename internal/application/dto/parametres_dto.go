package dto

import (
	"time"

	"github.com/lbertrand/garage-api/internal/domain/entity"
)

// UpdateParametresRequest mise à jour partielle de la configuration.
// Sur un système vierge la ligne singleton est créée avec les valeurs par
// défaut avant l'application du patch.
type UpdateParametresRequest struct {
	TVAApplicable            *bool    `json:"tvaApplicable"`
	RelanceAuto              *bool    `json:"relanceAuto"`
	AfficherLogo             *bool    `json:"afficherLogo"`
	ModesPaiementAutorises   []string `json:"modesPaiementAutorises" validate:"omitempty,min=1,dive,oneof=CB ESPECES CHEQUE VIREMENT"`
	DelaiAlerteJours         *int     `json:"delaiAlerteJours" validate:"omitempty,min=0,max=90"`
	RapportActif             *bool    `json:"rapportActif"`
	RapportFrequence         *string  `json:"rapportFrequence" validate:"omitempty,oneof=HEBDOMADAIRE MENSUEL"`
	RapportEmailDestinataire *string  `json:"rapportEmailDestinataire" validate:"omitempty,email"`
}

// ParametresResponse représentation API de la configuration.
type ParametresResponse struct {
	ID                       string    `json:"id"`
	TVAApplicable            bool      `json:"tvaApplicable"`
	RelanceAuto              bool      `json:"relanceAuto"`
	AfficherLogo             bool      `json:"afficherLogo"`
	ModesPaiementAutorises   []string  `json:"modesPaiementAutorises"`
	DelaiAlerteJours         int       `json:"delaiAlerteJours"`
	RapportActif             bool      `json:"rapportActif"`
	RapportFrequence         string    `json:"rapportFrequence"`
	RapportEmailDestinataire string    `json:"rapportEmailDestinataire,omitempty"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

// ParametresFromEntity convertit l'entité en réponse API.
func ParametresFromEntity(p *entity.Parametres) *ParametresResponse {
	return &ParametresResponse{
		ID:                       p.ID,
		TVAApplicable:            p.TVAApplicable,
		RelanceAuto:              p.RelanceAuto,
		AfficherLogo:             p.AfficherLogo,
		ModesPaiementAutorises:   p.ModesPaiementAutorises,
		DelaiAlerteJours:         p.DelaiAlerteJours,
		RapportActif:             p.RapportActif,
		RapportFrequence:         p.RapportFrequence,
		RapportEmailDestinataire: p.RapportEmailDestinataire,
		CreatedAt:                p.CreatedAt,
		UpdatedAt:                p.UpdatedAt,
	}
}
