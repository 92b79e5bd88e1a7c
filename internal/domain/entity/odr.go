package entity

import "time"

// Statuts d'un ordre de réparation. EN_COURS est le seul état non terminal.
const (
	ODREnCours = "EN_COURS"
	ODRTermine = "TERMINE"
	ODRAnnule  = "ANNULE"
)

// OrdreReparation (ODR) suit l'exécution des travaux. Il peut dériver d'un
// devis accepté (DevisID renseigné) ou être créé directement.
type OrdreReparation struct {
	ID          string
	Numero      string // ODR-0001, unique
	ClientID    string
	VehiculeID  string
	DevisID     *string
	Description string
	Statut      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ODRStatutTerminal indique si le statut est un état final.
func ODRStatutTerminal(statut string) bool {
	return statut == ODRTermine || statut == ODRAnnule
}
