package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/domain"
	"github.com/lbertrand/garage-api/internal/domain/entity"
	"github.com/lbertrand/garage-api/internal/domain/repository"
)

// FactureUseCase règles métier des factures : création depuis un ODR terminé
// ou un devis accepté (ou libre), suivi du statut de paiement, rendu PDF.
type FactureUseCase struct {
	repo       repository.FactureRepository
	clientRepo repository.ClientRepository
	odrRepo    repository.OrdreReparationRepository
	devisRepo  repository.DevisRepository
	pdf        FacturePDFGenerator
}

// NewFactureUseCase construit le cas d'usage.
func NewFactureUseCase(
	repo repository.FactureRepository,
	clientRepo repository.ClientRepository,
	odrRepo repository.OrdreReparationRepository,
	devisRepo repository.DevisRepository,
	pdf FacturePDFGenerator,
) *FactureUseCase {
	return &FactureUseCase{
		repo:       repo,
		clientRepo: clientRepo,
		odrRepo:    odrRepo,
		devisRepo:  devisRepo,
		pdf:        pdf,
	}
}

// Create crée une facture EN_ATTENTE. Devis et ODR référencés doivent porter
// sur le client facturé ; si le total est omis, celui du devis accepté est
// repris.
func (uc *FactureUseCase) Create(ctx context.Context, in dto.CreateFactureRequest) (*dto.FactureResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %s: %w", in.ClientID, domain.ErrNotFound)
	}

	total := in.TotalTTC

	if in.DevisID != nil {
		devis, err := uc.devisRepo.GetByID(ctx, *in.DevisID)
		if err != nil {
			return nil, err
		}
		if devis == nil {
			return nil, fmt.Errorf("devis %s: %w", *in.DevisID, domain.ErrNotFound)
		}
		if devis.Statut != entity.DevisAccepte {
			return nil, fmt.Errorf("devis %s au statut %s, seul un devis accepté se facture: %w", devis.Numero, devis.Statut, domain.ErrConflict)
		}
		if devis.ClientID != in.ClientID {
			return nil, fmt.Errorf("devis %s ne porte pas sur ce client: %w", devis.Numero, domain.ErrConflict)
		}
		if total.IsZero() {
			total = devis.TotalTTC
		}
	}
	if in.ODRID != nil {
		odr, err := uc.odrRepo.GetByID(ctx, *in.ODRID)
		if err != nil {
			return nil, err
		}
		if odr == nil {
			return nil, fmt.Errorf("ordre de réparation %s: %w", *in.ODRID, domain.ErrNotFound)
		}
		if odr.Statut != entity.ODRTermine {
			return nil, fmt.Errorf("ODR %s au statut %s, seuls des travaux terminés se facturent: %w", odr.Numero, odr.Statut, domain.ErrConflict)
		}
		if odr.ClientID != in.ClientID {
			return nil, fmt.Errorf("ODR %s ne porte pas sur ce client: %w", odr.Numero, domain.ErrConflict)
		}
	}

	if !total.IsPositive() {
		return nil, &dto.FieldErrors{Messages: []string{"totalTTC doit être strictement positif"}}
	}

	seq, err := uc.repo.NextNumero(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	facture := &entity.Facture{
		ID:             uuid.New().String(),
		Numero:         fmt.Sprintf("FAC-%04d", seq),
		ClientID:       in.ClientID,
		ODRID:          in.ODRID,
		DevisID:        in.DevisID,
		TotalTTC:       total,
		StatutPaiement: entity.FactureEnAttente,
		DateEcheance:   in.DateEcheance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, facture); err != nil {
		return nil, err
	}
	return dto.FactureFromEntity(facture), nil
}

// GetByID renvoie la facture ou ErrNotFound.
func (uc *FactureUseCase) GetByID(ctx context.Context, id string) (*dto.FactureResponse, error) {
	facture, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if facture == nil {
		return nil, fmt.Errorf("facture %s: %w", id, domain.ErrNotFound)
	}
	return dto.FactureFromEntity(facture), nil
}

// List renvoie une page de factures triée.
func (uc *FactureUseCase) List(ctx context.Context, req dto.PageRequest) ([]*dto.FactureResponse, *dto.Pagination, error) {
	page, err := req.ToQuery(dto.FactureSortFields)
	if err != nil {
		return nil, nil, err
	}
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	return dto.FacturesFromEntities(list), dto.NewPagination(page, total), nil
}

// Update modifie montant ou échéance d'une facture non soldée.
func (uc *FactureUseCase) Update(ctx context.Context, id string, in dto.UpdateFactureRequest) (*dto.FactureResponse, error) {
	facture, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if facture == nil {
		return nil, fmt.Errorf("facture %s: %w", id, domain.ErrNotFound)
	}
	if facture.EstSoldee() {
		return nil, fmt.Errorf("facture %s au statut %s: %w", facture.Numero, facture.StatutPaiement, domain.ErrConflict)
	}

	if in.TotalTTC != nil {
		if !in.TotalTTC.IsPositive() {
			return nil, &dto.FieldErrors{Messages: []string{"totalTTC doit être strictement positif"}}
		}
		facture.TotalTTC = *in.TotalTTC
	}
	if in.DateEcheance != nil {
		facture.DateEcheance = *in.DateEcheance
	}
	facture.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, facture); err != nil {
		return nil, err
	}
	return dto.FactureFromEntity(facture), nil
}

// UpdatePaiement applique une transition de statut de paiement. PAYEE et
// ANNULEE sont terminaux ; les autres statuts restent modifiables (un
// impayé peut finir payé).
func (uc *FactureUseCase) UpdatePaiement(ctx context.Context, id string, in dto.UpdatePaiementRequest) (*dto.FactureResponse, error) {
	facture, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if facture == nil {
		return nil, fmt.Errorf("facture %s: %w", id, domain.ErrNotFound)
	}
	if facture.EstSoldee() {
		return nil, fmt.Errorf("facture %s déjà au statut %s: %w", facture.Numero, facture.StatutPaiement, domain.ErrConflict)
	}

	if err := uc.repo.UpdateStatutPaiement(ctx, id, in.StatutPaiement); err != nil {
		return nil, err
	}
	facture.StatutPaiement = in.StatutPaiement
	facture.UpdatedAt = time.Now()
	return dto.FactureFromEntity(facture), nil
}

// Delete supprime une facture annulée. Les autres restent en base (pièces
// comptables).
func (uc *FactureUseCase) Delete(ctx context.Context, id string) error {
	facture, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if facture == nil {
		return fmt.Errorf("facture %s: %w", id, domain.ErrNotFound)
	}
	if facture.StatutPaiement != entity.FactureAnnulee {
		return fmt.Errorf("facture %s au statut %s, seule une facture annulée se supprime: %w", facture.Numero, facture.StatutPaiement, domain.ErrConflict)
	}
	return uc.repo.Delete(ctx, id)
}

// GeneratePDF rend la facture en PDF. Les lignes proviennent du devis
// référencé ; à défaut une ligne unique reprend le total.
func (uc *FactureUseCase) GeneratePDF(ctx context.Context, id string) ([]byte, error) {
	facture, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if facture == nil {
		return nil, fmt.Errorf("facture %s: %w", id, domain.ErrNotFound)
	}
	client, err := uc.clientRepo.GetByID(ctx, facture.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %s: %w", facture.ClientID, domain.ErrNotFound)
	}

	var lignes []entity.LigneDevis
	if facture.DevisID != nil {
		devis, err := uc.devisRepo.GetByID(ctx, *facture.DevisID)
		if err != nil {
			return nil, err
		}
		if devis != nil {
			lignes = devis.Lignes
		}
	}
	if len(lignes) == 0 {
		lignes = []entity.LigneDevis{{
			Designation:     "Prestations atelier",
			PrixUnitaireTTC: facture.TotalTTC,
			Quantite:        1,
		}}
	}

	return uc.pdf.GenerateFacturePDF(ctx, facture, client, lignes)
}

// Stats agrégats pour GET /factures/stats.
func (uc *FactureUseCase) Stats(ctx context.Context) (*dto.FactureStatsResponse, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.FactureStatsResponse{
		Total:         stats.Total,
		EnAttente:     stats.EnAttente,
		Payees:        stats.Payees,
		Partielles:    stats.Partielles,
		Impayees:      stats.Impayees,
		Annulees:      stats.Annulees,
		MontantImpaye: stats.MontantImpaye,
	}, nil
}
