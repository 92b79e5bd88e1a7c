package entity

import "time"

// Types de client.
const (
	TypeClientNormal      = "NORMAL"
	TypeClientGrandCompte = "GRAND_COMPTE"
)

// Client représente un client du garage.
// NumeroClient est un numéro séquentiel lisible (ex: CLI-0042), unique,
// attribué à la création.
type Client struct {
	ID           string
	NumeroClient string
	Prenom       string
	Nom          string
	Entreprise   string
	Telephone    string
	Email        string
	Adresse      string
	Ville        string
	CodePostal   string
	TypeClient   string // NORMAL | GRAND_COMPTE
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
