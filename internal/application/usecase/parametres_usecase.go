package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/domain/entity"
	"github.com/lbertrand/garage-api/internal/domain/repository"
)

// ParametresUseCase gestion du singleton de configuration.
type ParametresUseCase struct {
	repo repository.ParametresRepository
}

// NewParametresUseCase construit le cas d'usage.
func NewParametresUseCase(repo repository.ParametresRepository) *ParametresUseCase {
	return &ParametresUseCase{repo: repo}
}

// getOrCreate lit la ligne unique ; si elle n'existe pas encore elle est
// insérée avec la configuration par défaut. Idempotent : deux appels sans
// écriture intermédiaire renvoient la même ligne.
func (uc *ParametresUseCase) getOrCreate(ctx context.Context) (*entity.Parametres, error) {
	parametres, err := uc.repo.GetFirst(ctx)
	if err != nil {
		return nil, err
	}
	if parametres != nil {
		return parametres, nil
	}

	now := time.Now()
	parametres = entity.DefaultParametres()
	parametres.ID = uuid.New().String()
	parametres.CreatedAt = now
	parametres.UpdatedAt = now
	if err := uc.repo.Create(ctx, parametres); err != nil {
		return nil, err
	}
	return parametres, nil
}

// Get renvoie la configuration courante (créée au premier accès).
func (uc *ParametresUseCase) Get(ctx context.Context) (*dto.ParametresResponse, error) {
	parametres, err := uc.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ParametresFromEntity(parametres), nil
}

// Update résout d'abord le singleton (en le créant au besoin) puis applique
// la fusion partielle : sur un système vierge, "update" équivaut à "create
// avec surcharges".
func (uc *ParametresUseCase) Update(ctx context.Context, in dto.UpdateParametresRequest) (*dto.ParametresResponse, error) {
	parametres, err := uc.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if in.TVAApplicable != nil {
		parametres.TVAApplicable = *in.TVAApplicable
	}
	if in.RelanceAuto != nil {
		parametres.RelanceAuto = *in.RelanceAuto
	}
	if in.AfficherLogo != nil {
		parametres.AfficherLogo = *in.AfficherLogo
	}
	if in.ModesPaiementAutorises != nil {
		parametres.ModesPaiementAutorises = in.ModesPaiementAutorises
	}
	if in.DelaiAlerteJours != nil {
		parametres.DelaiAlerteJours = *in.DelaiAlerteJours
	}
	if in.RapportActif != nil {
		parametres.RapportActif = *in.RapportActif
	}
	if in.RapportFrequence != nil {
		parametres.RapportFrequence = *in.RapportFrequence
	}
	if in.RapportEmailDestinataire != nil {
		parametres.RapportEmailDestinataire = *in.RapportEmailDestinataire
	}
	parametres.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, parametres); err != nil {
		return nil, err
	}
	return dto.ParametresFromEntity(parametres), nil
}

// DelaiAlerte renvoie le délai d'alerte d'échéance configuré (utilisé par le
// tableau de bord).
func (uc *ParametresUseCase) DelaiAlerte(ctx context.Context) (int, error) {
	parametres, err := uc.getOrCreate(ctx)
	if err != nil {
		return 0, err
	}
	return parametres.DelaiAlerteJours, nil
}
