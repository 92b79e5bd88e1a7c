package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/domain"
	"github.com/lbertrand/garage-api/internal/domain/entity"
	"github.com/lbertrand/garage-api/internal/domain/repository"
)

// VehiculeUseCase règles métier des véhicules : unicité de l'immatriculation
// sur tout le parc, suppression bloquée tant que des devis ou ODR référencent
// le véhicule.
type VehiculeUseCase struct {
	repo       repository.VehiculeRepository
	clientRepo repository.ClientRepository
	devisRepo  repository.DevisRepository
	odrRepo    repository.OrdreReparationRepository
}

// NewVehiculeUseCase construit le cas d'usage.
func NewVehiculeUseCase(
	repo repository.VehiculeRepository,
	clientRepo repository.ClientRepository,
	devisRepo repository.DevisRepository,
	odrRepo repository.OrdreReparationRepository,
) *VehiculeUseCase {
	return &VehiculeUseCase{
		repo:       repo,
		clientRepo: clientRepo,
		devisRepo:  devisRepo,
		odrRepo:    odrRepo,
	}
}

// Create crée un véhicule. La plaque est pré-vérifiée pour une erreur lisible ;
// l'insert n'est jamais tenté en spéculatif. La contrainte unique en base
// reste l'arbitre si deux créations concurrentes passent la pré-vérification.
func (uc *VehiculeUseCase) Create(ctx context.Context, in dto.CreateVehiculeRequest) (*dto.VehiculeResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %s: %w", in.ClientID, domain.ErrNotFound)
	}

	existing, err := uc.repo.GetByImmatriculation(ctx, in.Immatriculation)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("un véhicule immatriculé %s existe déjà: %w", in.Immatriculation, domain.ErrDuplicate)
	}

	now := time.Now()
	vehicule := &entity.Vehicule{
		ID:              uuid.New().String(),
		ClientID:        in.ClientID,
		Immatriculation: in.Immatriculation,
		Marque:          in.Marque,
		Modele:          in.Modele,
		Annee:           in.Annee,
		NumeroSerie:     in.NumeroSerie,
		Kilometrage:     in.Kilometrage,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, vehicule); err != nil {
		return nil, err
	}
	return dto.VehiculeFromEntity(vehicule), nil
}

// GetByID renvoie le véhicule ou ErrNotFound.
func (uc *VehiculeUseCase) GetByID(ctx context.Context, id string) (*dto.VehiculeResponse, error) {
	vehicule, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicule == nil {
		return nil, fmt.Errorf("véhicule %s: %w", id, domain.ErrNotFound)
	}
	return dto.VehiculeFromEntity(vehicule), nil
}

// List renvoie une page de véhicules triée.
func (uc *VehiculeUseCase) List(ctx context.Context, req dto.PageRequest) ([]*dto.VehiculeResponse, *dto.Pagination, error) {
	page, err := req.ToQuery(dto.VehiculeSortFields)
	if err != nil {
		return nil, nil, err
	}
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	return dto.VehiculesFromEntities(list), dto.NewPagination(page, total), nil
}

// ListByClient renvoie tous les véhicules d'un client.
func (uc *VehiculeUseCase) ListByClient(ctx context.Context, clientID string) ([]*dto.VehiculeResponse, error) {
	list, err := uc.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return dto.VehiculesFromEntities(list), nil
}

// Search recherche plein-texte sur immatriculation, marque et modèle.
// Un terme vide retombe sur le listing paginé standard.
func (uc *VehiculeUseCase) Search(ctx context.Context, term string, req dto.PageRequest) ([]*dto.VehiculeResponse, *dto.Pagination, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return uc.List(ctx, req)
	}
	page, err := req.ToQuery(dto.VehiculeSortFields)
	if err != nil {
		return nil, nil, err
	}
	list, total, err := uc.repo.Search(ctx, term, page)
	if err != nil {
		return nil, nil, err
	}
	return dto.VehiculesFromEntities(list), dto.NewPagination(page, total), nil
}

// Update fusionne les champs fournis. Une nouvelle plaque n'est tolérée en
// doublon que si la ligne trouvée est le véhicule lui-même (pas de faux
// positif quand on resoumet la plaque courante).
func (uc *VehiculeUseCase) Update(ctx context.Context, id string, in dto.UpdateVehiculeRequest) (*dto.VehiculeResponse, error) {
	vehicule, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicule == nil {
		return nil, fmt.Errorf("véhicule %s: %w", id, domain.ErrNotFound)
	}

	if in.Immatriculation != nil {
		existing, err := uc.repo.GetByImmatriculation(ctx, *in.Immatriculation)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != vehicule.ID {
			return nil, fmt.Errorf("un véhicule immatriculé %s existe déjà: %w", *in.Immatriculation, domain.ErrDuplicate)
		}
		vehicule.Immatriculation = *in.Immatriculation
	}
	if in.Marque != nil {
		vehicule.Marque = *in.Marque
	}
	if in.Modele != nil {
		vehicule.Modele = *in.Modele
	}
	if in.Annee != nil {
		vehicule.Annee = *in.Annee
	}
	if in.NumeroSerie != nil {
		vehicule.NumeroSerie = *in.NumeroSerie
	}
	if in.Kilometrage != nil {
		vehicule.Kilometrage = *in.Kilometrage
	}
	vehicule.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, vehicule); err != nil {
		return nil, err
	}
	return dto.VehiculeFromEntity(vehicule), nil
}

// Delete supprime un véhicule sans dépendances. Le moindre devis ou ODR
// rattaché bloque la suppression et laisse le véhicule intact.
func (uc *VehiculeUseCase) Delete(ctx context.Context, id string) error {
	vehicule, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicule == nil {
		return fmt.Errorf("véhicule %s: %w", id, domain.ErrNotFound)
	}

	nbDevis, err := uc.devisRepo.CountByVehicule(ctx, id)
	if err != nil {
		return err
	}
	if nbDevis > 0 {
		return fmt.Errorf("%d devis référencent ce véhicule: %w", nbDevis, domain.ErrConflict)
	}
	nbODR, err := uc.odrRepo.CountByVehicule(ctx, id)
	if err != nil {
		return err
	}
	if nbODR > 0 {
		return fmt.Errorf("%d ordre(s) de réparation référencent ce véhicule: %w", nbODR, domain.ErrConflict)
	}

	return uc.repo.Delete(ctx, id)
}

// Stats agrégats pour GET /vehicules/stats.
func (uc *VehiculeUseCase) Stats(ctx context.Context) (*dto.VehiculeStatsResponse, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.VehiculeStatsResponse{Total: stats.Total, Marques: stats.Marques}, nil
}
