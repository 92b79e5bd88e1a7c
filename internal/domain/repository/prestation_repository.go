package repository

import (
	"context"

	"github.com/lbertrand/garage-api/internal/domain/entity"
)

// PrestationStats agrégats simples sur le catalogue.
type PrestationStats struct {
	Total       int
	Carrosserie int
	Mecanique   int
}

// PrestationRepository définit le port de persistance du catalogue de prestations.
type PrestationRepository interface {
	Create(ctx context.Context, prestation *entity.Prestation) error
	GetByID(ctx context.Context, id string) (*entity.Prestation, error)
	List(ctx context.Context, page PageQuery) ([]*entity.Prestation, int, error)
	Update(ctx context.Context, prestation *entity.Prestation) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*PrestationStats, error)
}
