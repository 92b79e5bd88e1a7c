package repository

import (
	"context"

	"github.com/lbertrand/garage-api/internal/domain/entity"
)

// ClientStats agrégats simples sur les clients.
type ClientStats struct {
	Total         int
	Normaux       int
	GrandsComptes int
}

// ClientRepository définit le port de persistance des clients.
// Les lectures par identifiant ou clé renvoient (nil, nil) si absent.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByEmail(ctx context.Context, email string) (*entity.Client, error)
	List(ctx context.Context, page PageQuery) ([]*entity.Client, int, error)
	Search(ctx context.Context, term string, page PageQuery) ([]*entity.Client, int, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
	NextNumero(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*ClientStats, error)
}
