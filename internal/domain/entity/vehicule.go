package entity

import "time"

// Vehicule représente un véhicule rattaché à un client.
// L'immatriculation (format AA-123-AA) est unique sur l'ensemble du parc.
type Vehicule struct {
	ID              string
	ClientID        string
	Immatriculation string
	Marque          string
	Modele          string
	Annee           int
	NumeroSerie     string
	Kilometrage     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
