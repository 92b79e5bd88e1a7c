package entity

import "time"

// Fréquences d'envoi du rapport d'activité.
const (
	RapportHebdomadaire = "HEBDOMADAIRE"
	RapportMensuel      = "MENSUEL"
)

// Parametres configuration globale de l'application. Une seule ligne existe
// (sémantique get-or-create) ; la ligne est créée avec ces valeurs par défaut
// au premier accès.
type Parametres struct {
	ID                      string
	TVAApplicable           bool
	RelanceAuto             bool
	AfficherLogo            bool
	ModesPaiementAutorises  []string
	DelaiAlerteJours        int // jours avant échéance pour alerter
	RapportActif            bool
	RapportFrequence        string // HEBDOMADAIRE | MENSUEL
	RapportEmailDestinataire string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DefaultParametres renvoie la configuration insérée au premier GetOrCreate.
func DefaultParametres() *Parametres {
	return &Parametres{
		TVAApplicable:          true,
		RelanceAuto:            false,
		AfficherLogo:           true,
		ModesPaiementAutorises: []string{"CB", "ESPECES", "CHEQUE", "VIREMENT"},
		DelaiAlerteJours:       7,
		RapportActif:           false,
		RapportFrequence:       RapportMensuel,
	}
}
