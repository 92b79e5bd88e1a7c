package dto

import (
	"fmt"
	"strings"

	"github.com/lbertrand/garage-api/internal/domain"
	"github.com/lbertrand/garage-api/internal/domain/repository"
)

// Response enveloppe uniforme de toutes les réponses de l'API.
// Une réponse est soit un succès (Data/Pagination), soit un échec
// (Message/Errors), jamais un mélange des deux.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination métadonnées de page renvoyées avec les listings.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination construit les métadonnées ; TotalPages = ceil(total/limit).
func NewPagination(page repository.PageQuery, total int) *Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + page.Limit - 1) / page.Limit
	}
	return &Pagination{
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// PageRequest paramètres de pagination/tri tels que reçus en query string.
type PageRequest struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
}

// ToQuery valide SortBy contre la liste blanche de l'entité (champ JSON ->
// colonne SQL) et renvoie la requête normalisée. Un champ de tri inconnu est
// une erreur de validation : il n'atteint jamais le repository.
func (p PageRequest) ToQuery(sortFields map[string]string) (repository.PageQuery, error) {
	q := repository.PageQuery{Page: p.Page, Limit: p.Limit}

	if s := strings.TrimSpace(p.SortBy); s != "" {
		col, ok := sortFields[s]
		if !ok {
			return q, &FieldErrors{Messages: []string{fmt.Sprintf("champ de tri inconnu: %s", s)}}
		}
		q.SortBy = col
	}
	switch strings.ToUpper(strings.TrimSpace(p.SortOrder)) {
	case "", "DESC":
		q.SortOrder = "DESC"
	case "ASC":
		q.SortOrder = "ASC"
	default:
		return q, &FieldErrors{Messages: []string{fmt.Sprintf("ordre de tri invalide: %s", p.SortOrder)}}
	}

	q.Normalize()
	return q, nil
}

// FieldErrors erreur de validation portant les messages par champ destinés au
// tableau errors de l'enveloppe. S'identifie à domain.ErrInvalidInput via
// errors.Is.
type FieldErrors struct {
	Messages []string
}

func (e *FieldErrors) Error() string {
	if len(e.Messages) == 0 {
		return domain.ErrInvalidInput.Error()
	}
	return strings.Join(e.Messages, "; ")
}

// Unwrap rattache FieldErrors à la sentinelle de validation du domaine.
func (e *FieldErrors) Unwrap() error {
	return domain.ErrInvalidInput
}
