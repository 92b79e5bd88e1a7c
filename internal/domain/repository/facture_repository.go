package repository

import (
	"context"

	"github.com/lbertrand/garage-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// FactureStats répartition des factures par statut de paiement.
type FactureStats struct {
	Total          int
	EnAttente      int
	Payees         int
	Partielles     int
	Impayees       int
	Annulees       int
	MontantImpaye  decimal.Decimal
}

// FactureRepository définit le port de persistance des factures.
type FactureRepository interface {
	Create(ctx context.Context, facture *entity.Facture) error
	GetByID(ctx context.Context, id string) (*entity.Facture, error)
	List(ctx context.Context, page PageQuery) ([]*entity.Facture, int, error)
	Update(ctx context.Context, facture *entity.Facture) error
	UpdateStatutPaiement(ctx context.Context, id, statut string) error
	Delete(ctx context.Context, id string) error
	CountByClient(ctx context.Context, clientID string) (int, error)
	NextNumero(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*FactureStats, error)
}
