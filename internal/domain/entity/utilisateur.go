package entity

import "time"

// Rôles applicatifs.
const (
	RoleAdmin   = "ADMIN"
	RoleEmploye = "EMPLOYE"
)

// Utilisateur compte applicatif. Le mot de passe est stocké haché (bcrypt),
// jamais en clair.
type Utilisateur struct {
	ID             string
	Email          string // unique
	MotDePasseHash string
	Nom            string
	Role           string // ADMIN | EMPLOYE
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
