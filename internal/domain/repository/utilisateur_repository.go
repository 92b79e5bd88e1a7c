package repository

import (
	"context"

	"github.com/lbertrand/garage-api/internal/domain/entity"
)

// UtilisateurRepository définit le port de persistance des comptes.
type UtilisateurRepository interface {
	Create(ctx context.Context, utilisateur *entity.Utilisateur) error
	GetByID(ctx context.Context, id string) (*entity.Utilisateur, error)
	GetByEmail(ctx context.Context, email string) (*entity.Utilisateur, error)
}
