package repository

import (
	"context"

	"github.com/lbertrand/garage-api/internal/domain/entity"
)

// ParametresRepository définit le port de persistance de la configuration.
// Une seule ligne existe ; GetFirst renvoie (nil, nil) si la table est vide.
type ParametresRepository interface {
	GetFirst(ctx context.Context) (*entity.Parametres, error)
	Create(ctx context.Context, parametres *entity.Parametres) error
	Update(ctx context.Context, parametres *entity.Parametres) error
}
