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

// ODRUseCase règles métier des ordres de réparation : création directe ou
// depuis un devis accepté, cycle de vie EN_COURS -> TERMINE | ANNULE.
type ODRUseCase struct {
	repo         repository.OrdreReparationRepository
	clientRepo   repository.ClientRepository
	vehiculeRepo repository.VehiculeRepository
	devisRepo    repository.DevisRepository
}

// NewODRUseCase construit le cas d'usage.
func NewODRUseCase(
	repo repository.OrdreReparationRepository,
	clientRepo repository.ClientRepository,
	vehiculeRepo repository.VehiculeRepository,
	devisRepo repository.DevisRepository,
) *ODRUseCase {
	return &ODRUseCase{
		repo:         repo,
		clientRepo:   clientRepo,
		vehiculeRepo: vehiculeRepo,
		devisRepo:    devisRepo,
	}
}

// Create crée un ODR EN_COURS. Si un devis est référencé il doit être ACCEPTE
// et porter sur le même client et le même véhicule.
func (uc *ODRUseCase) Create(ctx context.Context, in dto.CreateODRRequest) (*dto.ODRResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %s: %w", in.ClientID, domain.ErrNotFound)
	}
	vehicule, err := uc.vehiculeRepo.GetByID(ctx, in.VehiculeID)
	if err != nil {
		return nil, err
	}
	if vehicule == nil {
		return nil, fmt.Errorf("véhicule %s: %w", in.VehiculeID, domain.ErrNotFound)
	}

	if in.DevisID != nil {
		devis, err := uc.devisRepo.GetByID(ctx, *in.DevisID)
		if err != nil {
			return nil, err
		}
		if devis == nil {
			return nil, fmt.Errorf("devis %s: %w", *in.DevisID, domain.ErrNotFound)
		}
		if devis.Statut != entity.DevisAccepte {
			return nil, fmt.Errorf("devis %s au statut %s, seul un devis accepté ouvre un ODR: %w", devis.Numero, devis.Statut, domain.ErrConflict)
		}
		if devis.ClientID != in.ClientID || devis.VehiculeID != in.VehiculeID {
			return nil, fmt.Errorf("devis %s ne porte pas sur ce client/véhicule: %w", devis.Numero, domain.ErrConflict)
		}
	}

	seq, err := uc.repo.NextNumero(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	odr := &entity.OrdreReparation{
		ID:          uuid.New().String(),
		Numero:      fmt.Sprintf("ODR-%04d", seq),
		ClientID:    in.ClientID,
		VehiculeID:  in.VehiculeID,
		DevisID:     in.DevisID,
		Description: in.Description,
		Statut:      entity.ODREnCours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, odr); err != nil {
		return nil, err
	}
	return dto.ODRFromEntity(odr), nil
}

// GetByID renvoie l'ODR ou ErrNotFound.
func (uc *ODRUseCase) GetByID(ctx context.Context, id string) (*dto.ODRResponse, error) {
	odr, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if odr == nil {
		return nil, fmt.Errorf("ordre de réparation %s: %w", id, domain.ErrNotFound)
	}
	return dto.ODRFromEntity(odr), nil
}

// List renvoie une page d'ODR triée.
func (uc *ODRUseCase) List(ctx context.Context, req dto.PageRequest) ([]*dto.ODRResponse, *dto.Pagination, error) {
	page, err := req.ToQuery(dto.ODRSortFields)
	if err != nil {
		return nil, nil, err
	}
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	return dto.ODRsFromEntities(list), dto.NewPagination(page, total), nil
}

// Update modifie la description d'un ODR encore EN_COURS.
func (uc *ODRUseCase) Update(ctx context.Context, id string, in dto.UpdateODRRequest) (*dto.ODRResponse, error) {
	odr, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if odr == nil {
		return nil, fmt.Errorf("ordre de réparation %s: %w", id, domain.ErrNotFound)
	}
	if entity.ODRStatutTerminal(odr.Statut) {
		return nil, fmt.Errorf("ODR %s au statut terminal %s: %w", odr.Numero, odr.Statut, domain.ErrConflict)
	}

	if in.Description != nil {
		odr.Description = *in.Description
	}
	odr.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, odr); err != nil {
		return nil, err
	}
	return dto.ODRFromEntity(odr), nil
}

// UpdateStatut applique une transition de cycle de vie. TERMINE et ANNULE
// sont terminaux.
func (uc *ODRUseCase) UpdateStatut(ctx context.Context, id string, in dto.UpdateODRStatutRequest) (*dto.ODRResponse, error) {
	odr, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if odr == nil {
		return nil, fmt.Errorf("ordre de réparation %s: %w", id, domain.ErrNotFound)
	}
	if entity.ODRStatutTerminal(odr.Statut) {
		return nil, fmt.Errorf("ODR %s déjà au statut terminal %s: %w", odr.Numero, odr.Statut, domain.ErrConflict)
	}

	if err := uc.repo.UpdateStatut(ctx, id, in.Statut); err != nil {
		return nil, err
	}
	odr.Statut = in.Statut
	odr.UpdatedAt = time.Now()
	return dto.ODRFromEntity(odr), nil
}

// Delete supprime un ODR annulé. Un ODR en cours ou terminé reste en base
// (trace des travaux).
func (uc *ODRUseCase) Delete(ctx context.Context, id string) error {
	odr, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if odr == nil {
		return fmt.Errorf("ordre de réparation %s: %w", id, domain.ErrNotFound)
	}
	if odr.Statut != entity.ODRAnnule {
		return fmt.Errorf("ODR %s au statut %s, seul un ODR annulé se supprime: %w", odr.Numero, odr.Statut, domain.ErrConflict)
	}
	return uc.repo.Delete(ctx, id)
}

// Stats agrégats pour GET /odr/stats.
func (uc *ODRUseCase) Stats(ctx context.Context) (*dto.ODRStatsResponse, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ODRStatsResponse{
		Total:    stats.Total,
		EnCours:  stats.EnCours,
		Termines: stats.Termines,
		Annules:  stats.Annules,
	}, nil
}
