package dto

import (
	"time"

	"github.com/lbertrand/garage-api/internal/domain/entity"
)

// VehiculeSortFields liste blanche de tri pour les listings de véhicules.
var VehiculeSortFields = map[string]string{
	"immatriculation": "immatriculation",
	"marque":          "marque",
	"modele":          "modele",
	"annee":           "annee",
	"createdAt":       "created_at",
}

// CreateVehiculeRequest payload de création d'un véhicule.
type CreateVehiculeRequest struct {
	ClientID        string `json:"clientId" validate:"required,uuid"`
	Immatriculation string `json:"immatriculation" validate:"required,plaque"`
	Marque          string `json:"marque" validate:"required,max=50"`
	Modele          string `json:"modele" validate:"required,max=50"`
	Annee           int    `json:"annee" validate:"required,min=1900,max=2100"`
	NumeroSerie     string `json:"numeroSerie" validate:"omitempty,max=50"`
	Kilometrage     int    `json:"kilometrage" validate:"omitempty,min=0"`
}

// UpdateVehiculeRequest payload de mise à jour partielle d'un véhicule.
type UpdateVehiculeRequest struct {
	Immatriculation *string `json:"immatriculation" validate:"omitempty,plaque"`
	Marque          *string `json:"marque" validate:"omitempty,max=50"`
	Modele          *string `json:"modele" validate:"omitempty,max=50"`
	Annee           *int    `json:"annee" validate:"omitempty,min=1900,max=2100"`
	NumeroSerie     *string `json:"numeroSerie" validate:"omitempty,max=50"`
	Kilometrage     *int    `json:"kilometrage" validate:"omitempty,min=0"`
}

// VehiculeResponse représentation API d'un véhicule.
type VehiculeResponse struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"clientId"`
	Immatriculation string    `json:"immatriculation"`
	Marque          string    `json:"marque"`
	Modele          string    `json:"modele"`
	Annee           int       `json:"annee"`
	NumeroSerie     string    `json:"numeroSerie,omitempty"`
	Kilometrage     int       `json:"kilometrage,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// VehiculeStatsResponse agrégats renvoyés par GET /vehicules/stats.
type VehiculeStatsResponse struct {
	Total   int `json:"total"`
	Marques int `json:"marques"`
}

// VehiculeFromEntity convertit l'entité en réponse API.
func VehiculeFromEntity(v *entity.Vehicule) *VehiculeResponse {
	return &VehiculeResponse{
		ID:              v.ID,
		ClientID:        v.ClientID,
		Immatriculation: v.Immatriculation,
		Marque:          v.Marque,
		Modele:          v.Modele,
		Annee:           v.Annee,
		NumeroSerie:     v.NumeroSerie,
		Kilometrage:     v.Kilometrage,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// VehiculesFromEntities convertit une page d'entités.
func VehiculesFromEntities(list []*entity.Vehicule) []*VehiculeResponse {
	out := make([]*VehiculeResponse, 0, len(list))
	for _, v := range list {
		out = append(out, VehiculeFromEntity(v))
	}
	return out
}
