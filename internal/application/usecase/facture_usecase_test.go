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

// fakePDFGenerator capture les lignes transmises au rendu.
type fakePDFGenerator struct {
	lignes []entity.LigneDevis
}

func (g *fakePDFGenerator) GenerateFacturePDF(_ context.Context, _ *entity.Facture, _ *entity.Client, lignes []entity.LigneDevis) ([]byte, error) {
	g.lignes = lignes
	return []byte("%PDF-1.4"), nil
}

type factureFixture struct {
	uc         *usecase.FactureUseCase
	clientRepo *fakeClientRepo
	devisRepo  *fakeDevisRepo
	odrRepo    *fakeODRRepo
	pdf        *fakePDFGenerator
	clientID   string
}

func newFactureFixture(t *testing.T) *factureFixture {
	t.Helper()
	clientRepo := newFakeClientRepo()
	devisRepo := newFakeDevisRepo()
	odrRepo := newFakeODRRepo()
	pdf := &fakePDFGenerator{}

	clientID := uuid.New().String()
	now := time.Now()
	require.NoError(t, clientRepo.Create(context.Background(), &entity.Client{
		ID: clientID, NumeroClient: "CLI-0001", Prenom: "Jean", Nom: "Dupont",
		Email: "jean@exemple.fr", CreatedAt: now, UpdatedAt: now,
	}))

	return &factureFixture{
		uc:         usecase.NewFactureUseCase(newFakeFactureRepo(), clientRepo, odrRepo, devisRepo, pdf),
		clientRepo: clientRepo,
		devisRepo:  devisRepo,
		odrRepo:    odrRepo,
		pdf:        pdf,
		clientID:   clientID,
	}
}

func (f *factureFixture) createRequest() dto.CreateFactureRequest {
	return dto.CreateFactureRequest{
		ClientID:     f.clientID,
		TotalTTC:     decimal.NewFromInt(250),
		DateEcheance: time.Now().AddDate(0, 1, 0),
	}
}

func TestFactureCreate_NumeroEtStatutInitial(t *testing.T) {
	f := newFactureFixture(t)

	facture, err := f.uc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)
	assert.Equal(t, "FAC-0001", facture.Numero)
	assert.Equal(t, entity.FactureEnAttente, facture.StatutPaiement)
}

func TestFactureCreate_TotalRepriseDuDevis(t *testing.T) {
	f := newFactureFixture(t)
	ctx := context.Background()

	devisID := uuid.New().String()
	require.NoError(t, f.devisRepo.Create(ctx, &entity.Devis{
		ID:       devisID,
		Numero:   "DEV-0001",
		ClientID: f.clientID,
		Statut:   entity.DevisAccepte,
		TotalTTC: decimal.NewFromFloat(591.00),
	}))

	req := f.createRequest()
	req.DevisID = &devisID
	req.TotalTTC = decimal.Zero

	facture, err := f.uc.Create(ctx, req)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(591.00).Equal(facture.TotalTTC),
		"le total omis est repris du devis accepté")
}

func TestFactureCreate_DevisNonAccepteRefuse(t *testing.T) {
	f := newFactureFixture(t)
	ctx := context.Background()

	devisID := uuid.New().String()
	require.NoError(t, f.devisRepo.Create(ctx, &entity.Devis{
		ID:       devisID,
		Numero:   "DEV-0001",
		ClientID: f.clientID,
		Statut:   entity.DevisEnAttente,
		TotalTTC: decimal.NewFromInt(100),
	}))

	req := f.createRequest()
	req.DevisID = &devisID
	_, err := f.uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestFactureCreate_DevisDunAutreClient(t *testing.T) {
	f := newFactureFixture(t)
	ctx := context.Background()

	// Devis accepté du client A, facturation au nom du client B : le total
	// du devis ne doit pas pouvoir être repris sur un autre compte.
	devisID := uuid.New().String()
	require.NoError(t, f.devisRepo.Create(ctx, &entity.Devis{
		ID:       devisID,
		Numero:   "DEV-0001",
		ClientID: f.clientID,
		Statut:   entity.DevisAccepte,
		TotalTTC: decimal.NewFromInt(500),
	}))

	autreClient := uuid.New().String()
	require.NoError(t, f.clientRepo.Create(ctx, &entity.Client{
		ID: autreClient, NumeroClient: "CLI-0002", Prenom: "Marie", Nom: "Martin",
		Email: "marie@exemple.fr",
	}))

	req := f.createRequest()
	req.ClientID = autreClient
	req.DevisID = &devisID
	req.TotalTTC = decimal.Zero

	_, err := f.uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestFactureCreate_ODRDunAutreClient(t *testing.T) {
	f := newFactureFixture(t)
	ctx := context.Background()

	odrID := uuid.New().String()
	require.NoError(t, f.odrRepo.Create(ctx, &entity.OrdreReparation{
		ID:       odrID,
		Numero:   "ODR-0001",
		ClientID: f.clientID,
		Statut:   entity.ODRTermine,
	}))

	autreClient := uuid.New().String()
	require.NoError(t, f.clientRepo.Create(ctx, &entity.Client{
		ID: autreClient, NumeroClient: "CLI-0002", Prenom: "Marie", Nom: "Martin",
		Email: "marie@exemple.fr",
	}))

	req := f.createRequest()
	req.ClientID = autreClient
	req.ODRID = &odrID

	_, err := f.uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestFactureCreate_ODRNonTermineRefuse(t *testing.T) {
	f := newFactureFixture(t)
	ctx := context.Background()

	odrID := uuid.New().String()
	require.NoError(t, f.odrRepo.Create(ctx, &entity.OrdreReparation{
		ID:       odrID,
		Numero:   "ODR-0001",
		ClientID: f.clientID,
		Statut:   entity.ODREnCours,
	}))

	req := f.createRequest()
	req.ODRID = &odrID
	_, err := f.uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"seuls des travaux terminés se facturent")
}

func TestFactureCreate_TotalNulRefuse(t *testing.T) {
	f := newFactureFixture(t)

	req := f.createRequest()
	req.TotalTTC = decimal.Zero
	_, err := f.uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFactureUpdatePaiement_ImpayeePuisPayee(t *testing.T) {
	f := newFactureFixture(t)
	ctx := context.Background()

	facture, err := f.uc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	// Un impayé n'est pas terminal : la facture peut finir payée.
	_, err = f.uc.UpdatePaiement(ctx, facture.ID, dto.UpdatePaiementRequest{StatutPaiement: entity.FactureImpayee})
	require.NoError(t, err)

	payee, err := f.uc.UpdatePaiement(ctx, facture.ID, dto.UpdatePaiementRequest{StatutPaiement: entity.FacturePayee})
	require.NoError(t, err)
	assert.Equal(t, entity.FacturePayee, payee.StatutPaiement)

	_, err = f.uc.UpdatePaiement(ctx, facture.ID, dto.UpdatePaiementRequest{StatutPaiement: entity.FactureImpayee})
	assert.ErrorIs(t, err, domain.ErrConflict, "PAYEE est terminal")
}

func TestFactureUpdate_BloqueUneFoisSoldee(t *testing.T) {
	f := newFactureFixture(t)
	ctx := context.Background()

	facture, err := f.uc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	_, err = f.uc.UpdatePaiement(ctx, facture.ID, dto.UpdatePaiementRequest{StatutPaiement: entity.FacturePayee})
	require.NoError(t, err)

	total := decimal.NewFromInt(300)
	_, err = f.uc.Update(ctx, facture.ID, dto.UpdateFactureRequest{TotalTTC: &total})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestFactureDelete_SeuleAnnuleeSeSupprime(t *testing.T) {
	f := newFactureFixture(t)
	ctx := context.Background()

	facture, err := f.uc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	err = f.uc.Delete(ctx, facture.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "une pièce comptable reste en base")

	_, err = f.uc.UpdatePaiement(ctx, facture.ID, dto.UpdatePaiementRequest{StatutPaiement: entity.FactureAnnulee})
	require.NoError(t, err)
	require.NoError(t, f.uc.Delete(ctx, facture.ID))
}

func TestFactureGeneratePDF_LigneUniqueSansDevis(t *testing.T) {
	f := newFactureFixture(t)
	ctx := context.Background()

	facture, err := f.uc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	doc, err := f.uc.GeneratePDF(ctx, facture.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)

	require.Len(t, f.pdf.lignes, 1)
	assert.True(t, decimal.NewFromInt(250).Equal(f.pdf.lignes[0].PrixUnitaireTTC),
		"sans devis, une ligne unique reprend le total")
}

func TestFactureGeneratePDF_LignesDuDevis(t *testing.T) {
	f := newFactureFixture(t)
	ctx := context.Background()

	devisID := uuid.New().String()
	require.NoError(t, f.devisRepo.Create(ctx, &entity.Devis{
		ID:       devisID,
		Numero:   "DEV-0001",
		ClientID: f.clientID,
		Statut:   entity.DevisAccepte,
		TotalTTC: decimal.NewFromInt(470),
		Lignes: []entity.LigneDevis{
			{Designation: "Pare-chocs", PrixUnitaireTTC: decimal.NewFromInt(350), Quantite: 1},
			{Designation: "Peinture", PrixUnitaireTTC: decimal.NewFromInt(120), Quantite: 1},
		},
	}))

	req := f.createRequest()
	req.DevisID = &devisID
	facture, err := f.uc.Create(ctx, req)
	require.NoError(t, err)

	_, err = f.uc.GeneratePDF(ctx, facture.ID)
	require.NoError(t, err)
	assert.Len(t, f.pdf.lignes, 2)
}
