package repository

import (
	"context"

	"github.com/lbertrand/garage-api/internal/domain/entity"
)

// VehiculeStats agrégats simples sur le parc.
type VehiculeStats struct {
	Total   int
	Marques int // nombre de marques distinctes
}

// VehiculeRepository définit le port de persistance des véhicules.
type VehiculeRepository interface {
	Create(ctx context.Context, vehicule *entity.Vehicule) error
	GetByID(ctx context.Context, id string) (*entity.Vehicule, error)
	GetByImmatriculation(ctx context.Context, immatriculation string) (*entity.Vehicule, error)
	List(ctx context.Context, page PageQuery) ([]*entity.Vehicule, int, error)
	ListByClient(ctx context.Context, clientID string) ([]*entity.Vehicule, error)
	Search(ctx context.Context, term string, page PageQuery) ([]*entity.Vehicule, int, error)
	Update(ctx context.Context, vehicule *entity.Vehicule) error
	Delete(ctx context.Context, id string) error
	CountByClient(ctx context.Context, clientID string) (int, error)
	Stats(ctx context.Context) (*VehiculeStats, error)
}
