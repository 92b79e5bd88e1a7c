package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'un devis. EN_ATTENTE est le seul état non terminal.
const (
	DevisEnAttente = "EN_ATTENTE"
	DevisAccepte   = "ACCEPTE"
	DevisRefuse    = "REFUSE"
	DevisExpire    = "EXPIRE"
)

// Devis représente un devis émis pour un client et un véhicule.
type Devis struct {
	ID                 string
	Numero             string // DEV-0001, unique
	ClientID           string
	VehiculeID         string
	Famille            string // CARROSSERIE | MECANIQUE
	Statut             string
	DateValidite       time.Time
	ConditionsPaiement string
	AcomptePourcent    int
	ModesPaiement      []string
	TotalTTC           decimal.Decimal
	Lignes             []LigneDevis
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LigneDevis une ligne de devis. PrestationID est optionnel (ligne libre).
type LigneDevis struct {
	ID              string
	DevisID         string
	Designation     string
	PrixUnitaireTTC decimal.Decimal
	Quantite        int
	PrestationID    *string
}

// CalculerTotal recalcule le total TTC à partir des lignes.
func (d *Devis) CalculerTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range d.Lignes {
		total = total.Add(l.PrixUnitaireTTC.Mul(decimal.NewFromInt(int64(l.Quantite))))
	}
	return total.Round(2)
}

// DevisStatutTerminal indique si le statut est un état final.
func DevisStatutTerminal(statut string) bool {
	return statut == DevisAccepte || statut == DevisRefuse || statut == DevisExpire
}
