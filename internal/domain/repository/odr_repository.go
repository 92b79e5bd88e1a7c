package repository

import (
	"context"

	"github.com/lbertrand/garage-api/internal/domain/entity"
)

// ODRStats répartition des ordres de réparation par statut.
type ODRStats struct {
	Total    int
	EnCours  int
	Termines int
	Annules  int
}

// OrdreReparationRepository définit le port de persistance des ODR.
type OrdreReparationRepository interface {
	Create(ctx context.Context, odr *entity.OrdreReparation) error
	GetByID(ctx context.Context, id string) (*entity.OrdreReparation, error)
	List(ctx context.Context, page PageQuery) ([]*entity.OrdreReparation, int, error)
	Update(ctx context.Context, odr *entity.OrdreReparation) error
	UpdateStatut(ctx context.Context, id, statut string) error
	Delete(ctx context.Context, id string) error
	CountByVehicule(ctx context.Context, vehiculeID string) (int, error)
	NextNumero(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*ODRStats, error)
}
