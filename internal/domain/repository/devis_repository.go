package repository

import (
	"context"

	"github.com/lbertrand/garage-api/internal/domain/entity"
)

// DevisStats répartition des devis par statut.
type DevisStats struct {
	Total     int
	EnAttente int
	Acceptes  int
	Refuses   int
	Expires   int
}

// DevisRepository définit le port de persistance des devis.
// Create et Update persistent aussi les lignes ; GetByID les recharge.
type DevisRepository interface {
	Create(ctx context.Context, devis *entity.Devis) error
	GetByID(ctx context.Context, id string) (*entity.Devis, error)
	List(ctx context.Context, page PageQuery) ([]*entity.Devis, int, error)
	Update(ctx context.Context, devis *entity.Devis) error
	UpdateStatut(ctx context.Context, id, statut string) error
	Delete(ctx context.Context, id string) error
	CountByVehicule(ctx context.Context, vehiculeID string) (int, error)
	CountByClient(ctx context.Context, clientID string) (int, error)
	NextNumero(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*DevisStats, error)
}
