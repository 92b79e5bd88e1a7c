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

// ClientUseCase règles métier des clients : unicité de l'email, attribution
// du numéro client, suppression bloquée tant que des véhicules, devis ou
// factures y sont rattachés.
type ClientUseCase struct {
	repo         repository.ClientRepository
	vehiculeRepo repository.VehiculeRepository
	devisRepo    repository.DevisRepository
	factureRepo  repository.FactureRepository
}

// NewClientUseCase construit le cas d'usage.
func NewClientUseCase(
	repo repository.ClientRepository,
	vehiculeRepo repository.VehiculeRepository,
	devisRepo repository.DevisRepository,
	factureRepo repository.FactureRepository,
) *ClientUseCase {
	return &ClientUseCase{
		repo:         repo,
		vehiculeRepo: vehiculeRepo,
		devisRepo:    devisRepo,
		factureRepo:  factureRepo,
	}
}

// Create crée un client. L'email sert de clé naturelle : la pré-vérification
// donne une erreur lisible, la contrainte unique en base reste l'arbitre en
// cas de course.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("un client avec l'email %s existe déjà: %w", in.Email, domain.ErrDuplicate)
	}

	seq, err := uc.repo.NextNumero(ctx)
	if err != nil {
		return nil, err
	}

	typeClient := in.TypeClient
	if typeClient == "" {
		typeClient = entity.TypeClientNormal
	}

	now := time.Now()
	client := &entity.Client{
		ID:           uuid.New().String(),
		NumeroClient: fmt.Sprintf("CLI-%04d", seq),
		Prenom:       in.Prenom,
		Nom:          in.Nom,
		Entreprise:   in.Entreprise,
		Telephone:    in.Telephone,
		Email:        in.Email,
		Adresse:      in.Adresse,
		Ville:        in.Ville,
		CodePostal:   in.CodePostal,
		TypeClient:   typeClient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return dto.ClientFromEntity(client), nil
}

// GetByID renvoie le client ou ErrNotFound.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}
	return dto.ClientFromEntity(client), nil
}

// List renvoie une page de clients triée.
func (uc *ClientUseCase) List(ctx context.Context, req dto.PageRequest) ([]*dto.ClientResponse, *dto.Pagination, error) {
	page, err := req.ToQuery(dto.ClientSortFields)
	if err != nil {
		return nil, nil, err
	}
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	return dto.ClientsFromEntities(list), dto.NewPagination(page, total), nil
}

// Search recherche plein-texte sur nom, prénom, email et téléphone.
// Un terme vide retombe sur le listing paginé standard (choix UX, pas une
// erreur).
func (uc *ClientUseCase) Search(ctx context.Context, term string, req dto.PageRequest) ([]*dto.ClientResponse, *dto.Pagination, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return uc.List(ctx, req)
	}
	page, err := req.ToQuery(dto.ClientSortFields)
	if err != nil {
		return nil, nil, err
	}
	list, total, err := uc.repo.Search(ctx, term, page)
	if err != nil {
		return nil, nil, err
	}
	return dto.ClientsFromEntities(list), dto.NewPagination(page, total), nil
}

// Update fusionne les champs fournis. Si l'email change, le doublon n'est
// toléré que s'il s'agit de la même ligne.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}

	if in.Email != nil && *in.Email != client.Email {
		existing, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != client.ID {
			return nil, fmt.Errorf("un client avec l'email %s existe déjà: %w", *in.Email, domain.ErrDuplicate)
		}
		client.Email = *in.Email
	}
	if in.Prenom != nil {
		client.Prenom = *in.Prenom
	}
	if in.Nom != nil {
		client.Nom = *in.Nom
	}
	if in.Entreprise != nil {
		client.Entreprise = *in.Entreprise
	}
	if in.Telephone != nil {
		client.Telephone = *in.Telephone
	}
	if in.Adresse != nil {
		client.Adresse = *in.Adresse
	}
	if in.Ville != nil {
		client.Ville = *in.Ville
	}
	if in.CodePostal != nil {
		client.CodePostal = *in.CodePostal
	}
	if in.TypeClient != nil {
		client.TypeClient = *in.TypeClient
	}
	client.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return dto.ClientFromEntity(client), nil
}

// Delete supprime un client sans dépendances. Véhicules, devis ou factures
// rattachés bloquent la suppression.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}

	nbVehicules, err := uc.vehiculeRepo.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if nbVehicules > 0 {
		return fmt.Errorf("%d véhicule(s) rattaché(s) à ce client: %w", nbVehicules, domain.ErrConflict)
	}
	nbDevis, err := uc.devisRepo.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if nbDevis > 0 {
		return fmt.Errorf("%d devis rattaché(s) à ce client: %w", nbDevis, domain.ErrConflict)
	}
	nbFactures, err := uc.factureRepo.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if nbFactures > 0 {
		return fmt.Errorf("%d facture(s) rattachée(s) à ce client: %w", nbFactures, domain.ErrConflict)
	}

	return uc.repo.Delete(ctx, id)
}

// Stats agrégats pour GET /clients/stats.
func (uc *ClientUseCase) Stats(ctx context.Context) (*dto.ClientStatsResponse, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ClientStatsResponse{
		Total:         stats.Total,
		Normaux:       stats.Normaux,
		GrandsComptes: stats.GrandsComptes,
	}, nil
}
