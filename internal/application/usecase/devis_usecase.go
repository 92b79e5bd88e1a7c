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

// DevisUseCase règles métier des devis : numérotation, total recalculé depuis
// les lignes, cycle de vie EN_ATTENTE -> ACCEPTE | REFUSE | EXPIRE.
type DevisUseCase struct {
	repo         repository.DevisRepository
	clientRepo   repository.ClientRepository
	vehiculeRepo repository.VehiculeRepository
	tx           DevisTxRunner
}

// NewDevisUseCase construit le cas d'usage.
func NewDevisUseCase(
	repo repository.DevisRepository,
	clientRepo repository.ClientRepository,
	vehiculeRepo repository.VehiculeRepository,
	tx DevisTxRunner,
) *DevisUseCase {
	return &DevisUseCase{
		repo:         repo,
		clientRepo:   clientRepo,
		vehiculeRepo: vehiculeRepo,
		tx:           tx,
	}
}

func lignesFromRequest(devisID string, in []dto.LigneDevisRequest) ([]entity.LigneDevis, error) {
	lignes := make([]entity.LigneDevis, 0, len(in))
	for _, l := range in {
		if !l.PrixUnitaireTTC.IsPositive() {
			return nil, &dto.FieldErrors{Messages: []string{
				fmt.Sprintf("ligne %q: prixUnitaireTTC doit être strictement positif", l.Designation),
			}}
		}
		lignes = append(lignes, entity.LigneDevis{
			ID:              uuid.New().String(),
			DevisID:         devisID,
			Designation:     l.Designation,
			PrixUnitaireTTC: l.PrixUnitaireTTC,
			Quantite:        l.Quantite,
			PrestationID:    l.PrestationID,
		})
	}
	return lignes, nil
}

// Create crée un devis EN_ATTENTE avec ses lignes (transaction unique).
func (uc *DevisUseCase) Create(ctx context.Context, in dto.CreateDevisRequest) (*dto.DevisResponse, error) {
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
	if vehicule.ClientID != in.ClientID {
		return nil, fmt.Errorf("le véhicule %s n'appartient pas au client %s: %w", in.VehiculeID, in.ClientID, domain.ErrConflict)
	}

	seq, err := uc.repo.NextNumero(ctx)
	if err != nil {
		return nil, err
	}

	devisID := uuid.New().String()
	lignes, err := lignesFromRequest(devisID, in.Lignes)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	devis := &entity.Devis{
		ID:                 devisID,
		Numero:             fmt.Sprintf("DEV-%04d", seq),
		ClientID:           in.ClientID,
		VehiculeID:         in.VehiculeID,
		Famille:            in.Famille,
		Statut:             entity.DevisEnAttente,
		DateValidite:       in.DateValidite,
		ConditionsPaiement: in.ConditionsPaiement,
		AcomptePourcent:    in.AcomptePourcent,
		ModesPaiement:      in.ModesPaiement,
		Lignes:             lignes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	devis.TotalTTC = devis.CalculerTotal()

	if err := uc.tx.RunDevis(ctx, func(repo repository.DevisRepository) error {
		return repo.Create(ctx, devis)
	}); err != nil {
		return nil, err
	}
	return dto.DevisFromEntity(devis), nil
}

// GetByID renvoie le devis (lignes incluses) ou ErrNotFound.
func (uc *DevisUseCase) GetByID(ctx context.Context, id string) (*dto.DevisResponse, error) {
	devis, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if devis == nil {
		return nil, fmt.Errorf("devis %s: %w", id, domain.ErrNotFound)
	}
	return dto.DevisFromEntity(devis), nil
}

// List renvoie une page de devis triée.
func (uc *DevisUseCase) List(ctx context.Context, req dto.PageRequest) ([]*dto.DevisResponse, *dto.Pagination, error) {
	page, err := req.ToQuery(dto.DevisSortFields)
	if err != nil {
		return nil, nil, err
	}
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	return dto.DevisListFromEntities(list), dto.NewPagination(page, total), nil
}

// Update modifie un devis encore EN_ATTENTE. Si des lignes sont fournies,
// elles remplacent les lignes existantes et le total est recalculé.
func (uc *DevisUseCase) Update(ctx context.Context, id string, in dto.UpdateDevisRequest) (*dto.DevisResponse, error) {
	devis, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if devis == nil {
		return nil, fmt.Errorf("devis %s: %w", id, domain.ErrNotFound)
	}
	if devis.Statut != entity.DevisEnAttente {
		return nil, fmt.Errorf("devis %s au statut %s: %w", devis.Numero, devis.Statut, domain.ErrConflict)
	}

	if in.DateValidite != nil {
		devis.DateValidite = *in.DateValidite
	}
	if in.ConditionsPaiement != nil {
		devis.ConditionsPaiement = *in.ConditionsPaiement
	}
	if in.AcomptePourcent != nil {
		devis.AcomptePourcent = *in.AcomptePourcent
	}
	if in.ModesPaiement != nil {
		devis.ModesPaiement = in.ModesPaiement
	}
	if in.Lignes != nil {
		lignes, err := lignesFromRequest(devis.ID, in.Lignes)
		if err != nil {
			return nil, err
		}
		devis.Lignes = lignes
		devis.TotalTTC = devis.CalculerTotal()
	}
	devis.UpdatedAt = time.Now()

	if err := uc.tx.RunDevis(ctx, func(repo repository.DevisRepository) error {
		return repo.Update(ctx, devis)
	}); err != nil {
		return nil, err
	}
	return dto.DevisFromEntity(devis), nil
}

// UpdateStatut applique une transition de cycle de vie. Seul un devis
// EN_ATTENTE peut changer de statut ; les états ACCEPTE, REFUSE et EXPIRE
// sont terminaux.
func (uc *DevisUseCase) UpdateStatut(ctx context.Context, id string, in dto.UpdateDevisStatutRequest) (*dto.DevisResponse, error) {
	devis, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if devis == nil {
		return nil, fmt.Errorf("devis %s: %w", id, domain.ErrNotFound)
	}
	if entity.DevisStatutTerminal(devis.Statut) {
		return nil, fmt.Errorf("devis %s déjà au statut terminal %s: %w", devis.Numero, devis.Statut, domain.ErrConflict)
	}

	if err := uc.repo.UpdateStatut(ctx, id, in.Statut); err != nil {
		return nil, err
	}
	devis.Statut = in.Statut
	devis.UpdatedAt = time.Now()
	return dto.DevisFromEntity(devis), nil
}

// Delete supprime un devis encore EN_ATTENTE. Un devis accepté peut être
// référencé par un ODR ou une facture et ne se supprime plus.
func (uc *DevisUseCase) Delete(ctx context.Context, id string) error {
	devis, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if devis == nil {
		return fmt.Errorf("devis %s: %w", id, domain.ErrNotFound)
	}
	if devis.Statut != entity.DevisEnAttente {
		return fmt.Errorf("devis %s au statut %s: %w", devis.Numero, devis.Statut, domain.ErrConflict)
	}
	return uc.repo.Delete(ctx, id)
}

// Stats agrégats pour GET /devis/stats.
func (uc *DevisUseCase) Stats(ctx context.Context) (*dto.DevisStatsResponse, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DevisStatsResponse{
		Total:     stats.Total,
		EnAttente: stats.EnAttente,
		Acceptes:  stats.Acceptes,
		Refuses:   stats.Refuses,
		Expires:   stats.Expires,
	}, nil
}
