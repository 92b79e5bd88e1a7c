package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/application/usecase"
	"github.com/lbertrand/garage-api/internal/domain"
	"github.com/lbertrand/garage-api/internal/domain/entity"
)

type devisFixture struct {
	uc         *usecase.DevisUseCase
	clientID   string
	vehiculeID string
}

func newDevisFixture(t *testing.T) *devisFixture {
	t.Helper()
	ctx := context.Background()
	clientRepo := newFakeClientRepo()
	vehiculeRepo := newFakeVehiculeRepo()
	devisRepo := newFakeDevisRepo()

	clientID := uuid.New().String()
	vehiculeID := uuid.New().String()
	now := time.Now()
	require.NoError(t, clientRepo.Create(ctx, &entity.Client{
		ID: clientID, NumeroClient: "CLI-0001", Prenom: "Jean", Nom: "Dupont",
		Email: "jean@exemple.fr", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, vehiculeRepo.Create(ctx, &entity.Vehicule{
		ID: vehiculeID, ClientID: clientID, Immatriculation: "AB-123-CD",
		Marque: "Renault", Modele: "Clio", Annee: 2019, CreatedAt: now, UpdatedAt: now,
	}))

	return &devisFixture{
		uc:         usecase.NewDevisUseCase(devisRepo, clientRepo, vehiculeRepo, &fakeTxRunner{repo: devisRepo}),
		clientID:   clientID,
		vehiculeID: vehiculeID,
	}
}

func (f *devisFixture) createRequest() dto.CreateDevisRequest {
	return dto.CreateDevisRequest{
		ClientID:     f.clientID,
		VehiculeID:   f.vehiculeID,
		Famille:      entity.FamilleCarrosserie,
		DateValidite: time.Now().AddDate(0, 1, 0),
		Lignes: []dto.LigneDevisRequest{
			{Designation: "Remplacement pare-chocs", PrixUnitaireTTC: decimal.NewFromFloat(350.50), Quantite: 1},
			{Designation: "Peinture", PrixUnitaireTTC: decimal.NewFromFloat(120.25), Quantite: 2},
		},
	}
}

func TestDevisCreate_TotalCalculeDepuisLesLignes(t *testing.T) {
	f := newDevisFixture(t)

	devis, err := f.uc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	assert.Equal(t, "DEV-0001", devis.Numero)
	assert.Equal(t, entity.DevisEnAttente, devis.Statut)
	// 350.50 + 2 × 120.25 = 591.00
	assert.True(t, decimal.NewFromFloat(591.00).Equal(devis.TotalTTC),
		"total attendu 591.00, obtenu %s", devis.TotalTTC)
}

func TestDevisCreate_VehiculeDunAutreClient(t *testing.T) {
	f := newDevisFixture(t)
	g := newDevisFixture(t)

	req := f.createRequest()
	req.VehiculeID = g.vehiculeID

	_, err := f.uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un véhicule inconnu du dépôt doit être refusé")
}

func TestDevisCreate_LignePrixNegatif(t *testing.T) {
	f := newDevisFixture(t)

	req := f.createRequest()
	req.Lignes[0].PrixUnitaireTTC = decimal.NewFromInt(-5)

	_, err := f.uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDevisUpdateStatut_TransitionDepuisEnAttente(t *testing.T) {
	f := newDevisFixture(t)
	ctx := context.Background()

	devis, err := f.uc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	accepte, err := f.uc.UpdateStatut(ctx, devis.ID, dto.UpdateDevisStatutRequest{Statut: entity.DevisAccepte})
	require.NoError(t, err)
	assert.Equal(t, entity.DevisAccepte, accepte.Statut)
}

func TestDevisUpdateStatut_EtatTerminalFige(t *testing.T) {
	f := newDevisFixture(t)
	ctx := context.Background()

	devis, err := f.uc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	_, err = f.uc.UpdateStatut(ctx, devis.ID, dto.UpdateDevisStatutRequest{Statut: entity.DevisRefuse})
	require.NoError(t, err)

	// REFUSE est terminal : plus aucune transition.
	_, err = f.uc.UpdateStatut(ctx, devis.ID, dto.UpdateDevisStatutRequest{Statut: entity.DevisAccepte})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDevisUpdate_RefuseApresAcceptation(t *testing.T) {
	f := newDevisFixture(t)
	ctx := context.Background()

	devis, err := f.uc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	_, err = f.uc.UpdateStatut(ctx, devis.ID, dto.UpdateDevisStatutRequest{Statut: entity.DevisAccepte})
	require.NoError(t, err)

	conditions := "30 jours fin de mois"
	_, err = f.uc.Update(ctx, devis.ID, dto.UpdateDevisRequest{ConditionsPaiement: &conditions})
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un devis accepté ne se modifie plus")
}

func TestDevisUpdate_RemplaceLignesEtRecalculeTotal(t *testing.T) {
	f := newDevisFixture(t)
	ctx := context.Background()

	devis, err := f.uc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	updated, err := f.uc.Update(ctx, devis.ID, dto.UpdateDevisRequest{
		Lignes: []dto.LigneDevisRequest{
			{Designation: "Forfait vidange", PrixUnitaireTTC: decimal.NewFromInt(89), Quantite: 1},
		},
	})
	require.NoError(t, err)
	assert.Len(t, updated.Lignes, 1)
	assert.True(t, decimal.NewFromInt(89).Equal(updated.TotalTTC))
}

func TestDevisDelete_SeulEnAttenteSeSupprime(t *testing.T) {
	f := newDevisFixture(t)
	ctx := context.Background()

	devis, err := f.uc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	_, err = f.uc.UpdateStatut(ctx, devis.ID, dto.UpdateDevisStatutRequest{Statut: entity.DevisAccepte})
	require.NoError(t, err)

	err = f.uc.Delete(ctx, devis.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
