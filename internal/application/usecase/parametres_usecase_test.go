package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/application/usecase"
	"github.com/lbertrand/garage-api/internal/domain/entity"
)

func TestParametresGet_CreeLaLigneParDefautUneSeuleFois(t *testing.T) {
	repo := &fakeParametresRepo{}
	uc := usecase.NewParametresUseCase(repo)
	ctx := context.Background()

	premier, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, premier.TVAApplicable)
	assert.Equal(t, 7, premier.DelaiAlerteJours)
	assert.Equal(t, entity.RapportMensuel, premier.RapportFrequence)
	assert.ElementsMatch(t, []string{"CB", "ESPECES", "CHEQUE", "VIREMENT"}, premier.ModesPaiementAutorises)

	second, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, premier.ID, second.ID, "deux lectures successives renvoient la même ligne")
	assert.Equal(t, 1, repo.createCalls, "la ligne par défaut n'est créée qu'une fois")
}

func TestParametresUpdate_SurSystemeViergeCreePuisFusionne(t *testing.T) {
	repo := &fakeParametresRepo{}
	uc := usecase.NewParametresUseCase(repo)

	delai := 14
	relance := true
	updated, err := uc.Update(context.Background(), dto.UpdateParametresRequest{
		DelaiAlerteJours: &delai,
		RelanceAuto:      &relance,
	})
	require.NoError(t, err)

	assert.Equal(t, 14, updated.DelaiAlerteJours)
	assert.True(t, updated.RelanceAuto)
	// Les champs non fournis gardent leur valeur par défaut.
	assert.True(t, updated.TVAApplicable)
	assert.Equal(t, 1, repo.createCalls)
}

func TestParametresDelaiAlerte(t *testing.T) {
	repo := &fakeParametresRepo{}
	uc := usecase.NewParametresUseCase(repo)
	ctx := context.Background()

	delai, err := uc.DelaiAlerte(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, delai)

	nouveau := 3
	_, err = uc.Update(ctx, dto.UpdateParametresRequest{DelaiAlerteJours: &nouveau})
	require.NoError(t, err)

	delai, err = uc.DelaiAlerte(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, delai)
}
