package repository

// Bornes de pagination appliquées à tous les listings.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageQuery paramètres de pagination/tri transmis aux repositories.
// SortBy contient un nom de colonne déjà validé par la couche service ;
// SortOrder vaut "ASC" ou "DESC".
type PageQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Normalize applique les valeurs par défaut et le plafond de limite.
func (p *PageQuery) Normalize() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.SortBy == "" {
		p.SortBy = "created_at"
	}
	if p.SortOrder != "ASC" {
		p.SortOrder = "DESC"
	}
}

// Offset calcule l'offset SQL correspondant à la page.
func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}
