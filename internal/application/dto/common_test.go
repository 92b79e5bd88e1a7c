package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/domain"
	"github.com/lbertrand/garage-api/internal/domain/repository"
)

func TestPageRequestToQuery_Defauts(t *testing.T) {
	q, err := dto.PageRequest{}.ToQuery(dto.ClientSortFields)
	require.NoError(t, err)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "created_at", q.SortBy)
	assert.Equal(t, "DESC", q.SortOrder)
}

func TestPageRequestToQuery_LimitePlafonnee(t *testing.T) {
	q, err := dto.PageRequest{Page: 3, Limit: 500}.ToQuery(dto.ClientSortFields)
	require.NoError(t, err)

	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 100, q.Limit)
	assert.Equal(t, 200, q.Offset())
}

func TestPageRequestToQuery_TriTraduitEnColonne(t *testing.T) {
	q, err := dto.PageRequest{SortBy: "numeroClient", SortOrder: "asc"}.ToQuery(dto.ClientSortFields)
	require.NoError(t, err)

	assert.Equal(t, "numero_client", q.SortBy)
	assert.Equal(t, "ASC", q.SortOrder)
}

func TestPageRequestToQuery_ChampDeTriInconnu(t *testing.T) {
	_, err := dto.PageRequest{SortBy: "email; DROP TABLE clients"}.ToQuery(dto.ClientSortFields)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un champ hors liste blanche n'atteint jamais le SQL")
}

func TestPageRequestToQuery_OrdreDeTriInvalide(t *testing.T) {
	_, err := dto.PageRequest{SortOrder: "RANDOM"}.ToQuery(dto.ClientSortFields)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewPagination_ArrondiSuperieur(t *testing.T) {
	page := repository.PageQuery{Page: 1, Limit: 10}

	assert.Equal(t, 3, dto.NewPagination(page, 25).TotalPages)
	assert.Equal(t, 2, dto.NewPagination(page, 20).TotalPages)
	assert.Equal(t, 1, dto.NewPagination(page, 1).TotalPages)
}

func TestNewPagination_ListeVide(t *testing.T) {
	p := dto.NewPagination(repository.PageQuery{Page: 1, Limit: 10}, 0)

	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.TotalPages)
}
