package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/application/usecase"
	"github.com/lbertrand/garage-api/internal/domain"
	"github.com/lbertrand/garage-api/internal/domain/entity"
)

type vehiculeFixture struct {
	uc        *usecase.VehiculeUseCase
	devisRepo *fakeDevisRepo
	odrRepo   *fakeODRRepo
	clientID  string
}

func newVehiculeFixture(t *testing.T) *vehiculeFixture {
	t.Helper()
	clientRepo := newFakeClientRepo()
	devisRepo := newFakeDevisRepo()
	odrRepo := newFakeODRRepo()

	clientID := uuid.New().String()
	now := time.Now()
	require.NoError(t, clientRepo.Create(context.Background(), &entity.Client{
		ID:           clientID,
		NumeroClient: "CLI-0001",
		Prenom:       "Jean",
		Nom:          "Dupont",
		Email:        "jean@exemple.fr",
		CreatedAt:    now,
		UpdatedAt:    now,
	}))

	return &vehiculeFixture{
		uc:        usecase.NewVehiculeUseCase(newFakeVehiculeRepo(), clientRepo, devisRepo, odrRepo),
		devisRepo: devisRepo,
		odrRepo:   odrRepo,
		clientID:  clientID,
	}
}

func (f *vehiculeFixture) createRequest(plaque string) dto.CreateVehiculeRequest {
	return dto.CreateVehiculeRequest{
		ClientID:        f.clientID,
		Immatriculation: plaque,
		Marque:          "Renault",
		Modele:          "Clio",
		Annee:           2019,
	}
}

func TestVehiculeCreate_PlaqueEnDoublon(t *testing.T) {
	f := newVehiculeFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, f.createRequest("AB-123-CD"))
	require.NoError(t, err)

	_, err = f.uc.Create(ctx, f.createRequest("AB-123-CD"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestVehiculeCreate_ClientInconnu(t *testing.T) {
	f := newVehiculeFixture(t)

	req := f.createRequest("AB-123-CD")
	req.ClientID = uuid.New().String()
	_, err := f.uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehiculeUpdate_ResoumettreSaPropePlaque(t *testing.T) {
	f := newVehiculeFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, f.createRequest("AB-123-CD"))
	require.NoError(t, err)

	// La plaque courante n'est pas un faux positif de doublon.
	plaque := "AB-123-CD"
	updated, err := f.uc.Update(ctx, created.ID, dto.UpdateVehiculeRequest{Immatriculation: &plaque})
	require.NoError(t, err)
	assert.Equal(t, plaque, updated.Immatriculation)
}

func TestVehiculeUpdate_PlaqueDunAutreVehicule(t *testing.T) {
	f := newVehiculeFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, f.createRequest("AB-123-CD"))
	require.NoError(t, err)
	second, err := f.uc.Create(ctx, f.createRequest("EF-456-GH"))
	require.NoError(t, err)

	plaque := "AB-123-CD"
	_, err = f.uc.Update(ctx, second.ID, dto.UpdateVehiculeRequest{Immatriculation: &plaque})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestVehiculeDelete_BloqueParDevis(t *testing.T) {
	f := newVehiculeFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, f.createRequest("AB-123-CD"))
	require.NoError(t, err)

	require.NoError(t, f.devisRepo.Create(ctx, &entity.Devis{
		ID:         uuid.New().String(),
		Numero:     "DEV-0001",
		ClientID:   f.clientID,
		VehiculeID: created.ID,
		Statut:     entity.DevisEnAttente,
	}))

	err = f.uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestVehiculeDelete_BloqueParODR(t *testing.T) {
	f := newVehiculeFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, f.createRequest("AB-123-CD"))
	require.NoError(t, err)

	require.NoError(t, f.odrRepo.Create(ctx, &entity.OrdreReparation{
		ID:         uuid.New().String(),
		Numero:     "ODR-0001",
		ClientID:   f.clientID,
		VehiculeID: created.ID,
		Statut:     entity.ODREnCours,
	}))

	err = f.uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestVehiculeDelete_SansDependance(t *testing.T) {
	f := newVehiculeFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, f.createRequest("AB-123-CD"))
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, created.ID))

	_, err = f.uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
