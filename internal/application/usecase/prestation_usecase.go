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

// PrestationUseCase gestion du catalogue de prestations.
type PrestationUseCase struct {
	repo repository.PrestationRepository
}

// NewPrestationUseCase construit le cas d'usage.
func NewPrestationUseCase(repo repository.PrestationRepository) *PrestationUseCase {
	return &PrestationUseCase{repo: repo}
}

// Create crée une prestation. Le prix de base doit être strictement positif.
func (uc *PrestationUseCase) Create(ctx context.Context, in dto.CreatePrestationRequest) (*dto.PrestationResponse, error) {
	if !in.PrixBase.IsPositive() {
		return nil, &dto.FieldErrors{Messages: []string{"prixBase doit être strictement positif"}}
	}

	now := time.Now()
	prestation := &entity.Prestation{
		ID:          uuid.New().String(),
		Nom:         in.Nom,
		Description: in.Description,
		Famille:     in.Famille,
		PrixBase:    in.PrixBase,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, prestation); err != nil {
		return nil, err
	}
	return dto.PrestationFromEntity(prestation), nil
}

// GetByID renvoie la prestation ou ErrNotFound.
func (uc *PrestationUseCase) GetByID(ctx context.Context, id string) (*dto.PrestationResponse, error) {
	prestation, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prestation == nil {
		return nil, fmt.Errorf("prestation %s: %w", id, domain.ErrNotFound)
	}
	return dto.PrestationFromEntity(prestation), nil
}

// List renvoie une page du catalogue triée.
func (uc *PrestationUseCase) List(ctx context.Context, req dto.PageRequest) ([]*dto.PrestationResponse, *dto.Pagination, error) {
	page, err := req.ToQuery(dto.PrestationSortFields)
	if err != nil {
		return nil, nil, err
	}
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	return dto.PrestationsFromEntities(list), dto.NewPagination(page, total), nil
}

// Update fusionne les champs fournis.
func (uc *PrestationUseCase) Update(ctx context.Context, id string, in dto.UpdatePrestationRequest) (*dto.PrestationResponse, error) {
	prestation, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prestation == nil {
		return nil, fmt.Errorf("prestation %s: %w", id, domain.ErrNotFound)
	}

	if in.PrixBase != nil {
		if !in.PrixBase.IsPositive() {
			return nil, &dto.FieldErrors{Messages: []string{"prixBase doit être strictement positif"}}
		}
		prestation.PrixBase = *in.PrixBase
	}
	if in.Nom != nil {
		prestation.Nom = *in.Nom
	}
	if in.Description != nil {
		prestation.Description = *in.Description
	}
	if in.Famille != nil {
		prestation.Famille = *in.Famille
	}
	prestation.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, prestation); err != nil {
		return nil, err
	}
	return dto.PrestationFromEntity(prestation), nil
}

// Delete supprime une prestation. Les lignes de devis qui la référencent
// conservent leur désignation et leur prix (la référence est optionnelle).
func (uc *PrestationUseCase) Delete(ctx context.Context, id string) error {
	prestation, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if prestation == nil {
		return fmt.Errorf("prestation %s: %w", id, domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

// Stats agrégats pour GET /prestations/stats.
func (uc *PrestationUseCase) Stats(ctx context.Context) (*dto.PrestationStatsResponse, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PrestationStatsResponse{
		Total:       stats.Total,
		Carrosserie: stats.Carrosserie,
		Mecanique:   stats.Mecanique,
	}, nil
}
