package dto

import (
	"time"

	"github.com/lbertrand/garage-api/internal/domain/entity"
)

// ClientSortFields liste blanche de tri pour les listings de clients
// (champ JSON -> colonne SQL).
var ClientSortFields = map[string]string{
	"nom":          "nom",
	"prenom":       "prenom",
	"ville":        "ville",
	"numeroClient": "numero_client",
	"createdAt":    "created_at",
}

// CreateClientRequest payload de création d'un client.
type CreateClientRequest struct {
	Prenom     string `json:"prenom" validate:"required,min=2,max=50"`
	Nom        string `json:"nom" validate:"required,min=2,max=50"`
	Entreprise string `json:"entreprise" validate:"omitempty,max=100"`
	Telephone  string `json:"telephone" validate:"required,telfr"`
	Email      string `json:"email" validate:"required,email"`
	Adresse    string `json:"adresse" validate:"required,max=200"`
	Ville      string `json:"ville" validate:"required,max=100"`
	CodePostal string `json:"codePostal" validate:"required,codepostal"`
	TypeClient string `json:"typeClient" validate:"omitempty,oneof=NORMAL GRAND_COMPTE"`
}

// UpdateClientRequest payload de mise à jour partielle d'un client.
// Seuls les champs présents sont fusionnés.
type UpdateClientRequest struct {
	Prenom     *string `json:"prenom" validate:"omitempty,min=2,max=50"`
	Nom        *string `json:"nom" validate:"omitempty,min=2,max=50"`
	Entreprise *string `json:"entreprise" validate:"omitempty,max=100"`
	Telephone  *string `json:"telephone" validate:"omitempty,telfr"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Adresse    *string `json:"adresse" validate:"omitempty,max=200"`
	Ville      *string `json:"ville" validate:"omitempty,max=100"`
	CodePostal *string `json:"codePostal" validate:"omitempty,codepostal"`
	TypeClient *string `json:"typeClient" validate:"omitempty,oneof=NORMAL GRAND_COMPTE"`
}

// ClientResponse représentation API d'un client.
type ClientResponse struct {
	ID           string    `json:"id"`
	NumeroClient string    `json:"numeroClient"`
	Prenom       string    `json:"prenom"`
	Nom          string    `json:"nom"`
	Entreprise   string    `json:"entreprise,omitempty"`
	Telephone    string    `json:"telephone"`
	Email        string    `json:"email"`
	Adresse      string    `json:"adresse"`
	Ville        string    `json:"ville"`
	CodePostal   string    `json:"codePostal"`
	TypeClient   string    `json:"typeClient"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ClientStatsResponse agrégats renvoyés par GET /clients/stats.
type ClientStatsResponse struct {
	Total         int `json:"total"`
	Normaux       int `json:"normaux"`
	GrandsComptes int `json:"grandsComptes"`
}

// ClientFromEntity convertit l'entité en réponse API.
func ClientFromEntity(c *entity.Client) *ClientResponse {
	return &ClientResponse{
		ID:           c.ID,
		NumeroClient: c.NumeroClient,
		Prenom:       c.Prenom,
		Nom:          c.Nom,
		Entreprise:   c.Entreprise,
		Telephone:    c.Telephone,
		Email:        c.Email,
		Adresse:      c.Adresse,
		Ville:        c.Ville,
		CodePostal:   c.CodePostal,
		TypeClient:   c.TypeClient,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ClientsFromEntities convertit une page d'entités.
func ClientsFromEntities(list []*entity.Client) []*ClientResponse {
	out := make([]*ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ClientFromEntity(c))
	}
	return out
}
