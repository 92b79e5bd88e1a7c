package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts de paiement d'une facture.
const (
	FactureEnAttente      = "EN_ATTENTE"
	FacturePayee          = "PAYEE"
	FacturePartiellePayee = "PARTIELLEMENT_PAYEE"
	FactureImpayee        = "IMPAYEE"
	FactureAnnulee        = "ANNULEE"
)

// Facture représente une facture émise à un client, typiquement issue d'un
// ODR ou d'un devis accepté.
type Facture struct {
	ID             string
	Numero         string // FAC-0001, unique
	ClientID       string
	ODRID          *string
	DevisID        *string
	TotalTTC       decimal.Decimal
	StatutPaiement string
	DateEcheance   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EstSoldee indique si la facture ne peut plus changer de statut de paiement.
func (f *Facture) EstSoldee() bool {
	return f.StatutPaiement == FacturePayee || f.StatutPaiement == FactureAnnulee
}

// EstEnRetard indique si la facture doit déclencher une alerte d'échéance :
// non soldée et échéance à moins de delaiAlerteJours (ou dépassée).
func (f *Facture) EstEnRetard(now time.Time, delaiAlerteJours int) bool {
	if f.EstSoldee() {
		return false
	}
	seuil := now.AddDate(0, 0, delaiAlerteJours)
	return !f.DateEcheance.After(seuil)
}
