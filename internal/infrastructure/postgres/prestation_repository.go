package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lbertrand/garage-api/internal/domain"
	"github.com/lbertrand/garage-api/internal/domain/entity"
	"github.com/lbertrand/garage-api/internal/domain/repository"
)

var _ repository.PrestationRepository = (*PrestationRepo)(nil)

const prestationColumns = `id, nom, description, famille, prix_base, created_at, updated_at`

// PrestationRepo implémentation pgx de PrestationRepository.
type PrestationRepo struct {
	q Querier
}

// NewPrestationRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewPrestationRepository(q Querier) *PrestationRepo {
	return &PrestationRepo{q: q}
}

func scanPrestation(row pgx.Row) (*entity.Prestation, error) {
	var p entity.Prestation
	err := row.Scan(
		&p.ID, &p.Nom, &p.Description, &p.Famille, &p.PrixBase, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste une nouvelle prestation.
func (r *PrestationRepo) Create(ctx context.Context, p *entity.Prestation) error {
	query := `
		INSERT INTO prestations (id, nom, description, famille, prix_base, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nom, p.Description, p.Famille, p.PrixBase, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert prestation: %w", err)
	}
	return nil
}

// GetByID renvoie la prestation ou (nil, nil) si absente.
func (r *PrestationRepo) GetByID(ctx context.Context, id string) (*entity.Prestation, error) {
	query := `SELECT ` + prestationColumns + ` FROM prestations WHERE id = $1`
	p, err := scanPrestation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prestation: %w", err)
	}
	return p, nil
}

// List renvoie une page du catalogue et le total.
func (r *PrestationRepo) List(ctx context.Context, page repository.PageQuery) ([]*entity.Prestation, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM prestations`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count prestations: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM prestations %s LIMIT %d OFFSET %d`,
		prestationColumns, orderClause(page.SortBy, page.SortOrder), page.Limit, page.Offset())
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("list prestations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Prestation
	for rows.Next() {
		p, err := scanPrestation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan prestation: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update remplace les champs modifiables de la prestation.
func (r *PrestationRepo) Update(ctx context.Context, p *entity.Prestation) error {
	query := `
		UPDATE prestations SET nom = $2, description = $3, famille = $4, prix_base = $5,
			updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Nom, p.Description, p.Famille, p.PrixBase, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update prestation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete supprime une prestation par ID.
func (r *PrestationRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM prestations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prestation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Stats agrégats par famille.
func (r *PrestationRepo) Stats(ctx context.Context) (*repository.PrestationStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE famille = 'CARROSSERIE'),
			COUNT(*) FILTER (WHERE famille = 'MECANIQUE')
		FROM prestations`
	var s repository.PrestationStats
	if err := r.q.QueryRow(ctx, query).Scan(&s.Total, &s.Carrosserie, &s.Mecanique); err != nil {
		return nil, fmt.Errorf("stats prestations: %w", err)
	}
	return &s, nil
}
