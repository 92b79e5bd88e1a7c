package usecase

import (
	"context"

	"github.com/lbertrand/garage-api/internal/domain/entity"
	"github.com/lbertrand/garage-api/internal/domain/repository"
)

// DevisTxRunner exécute un callback avec un repository de devis lié à une
// transaction : l'en-tête et les lignes sont persistés atomiquement.
type DevisTxRunner interface {
	RunDevis(ctx context.Context, fn func(repo repository.DevisRepository) error) error
}

// FacturePDFGenerator rend la représentation PDF d'une facture.
type FacturePDFGenerator interface {
	GenerateFacturePDF(ctx context.Context, facture *entity.Facture, client *entity.Client, lignes []entity.LigneDevis) ([]byte, error)
}
