package dto

import "github.com/lbertrand/garage-api/internal/domain/entity"

// LoginRequest identifiants de connexion.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	MotDePasse string `json:"motDePasse" validate:"required,min=6"`
}

// UtilisateurResponse représentation API d'un compte (sans le hash).
type UtilisateurResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nom   string `json:"nom"`
	Role  string `json:"role"`
}

// LoginResponse jeton émis et compte associé.
type LoginResponse struct {
	Token       string              `json:"token"`
	Utilisateur UtilisateurResponse `json:"utilisateur"`
}

// UtilisateurFromEntity convertit l'entité en réponse API.
func UtilisateurFromEntity(u *entity.Utilisateur) UtilisateurResponse {
	return UtilisateurResponse{
		ID:    u.ID,
		Email: u.Email,
		Nom:   u.Nom,
		Role:  u.Role,
	}
}
