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

var _ repository.OrdreReparationRepository = (*ODRRepo)(nil)

const odrColumns = `id, numero, client_id, vehicule_id, devis_id, description, statut,
	created_at, updated_at`

// ODRRepo implémentation pgx de OrdreReparationRepository.
type ODRRepo struct {
	q Querier
}

// NewODRRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewODRRepository(q Querier) *ODRRepo {
	return &ODRRepo{q: q}
}

func scanODR(row pgx.Row) (*entity.OrdreReparation, error) {
	var o entity.OrdreReparation
	err := row.Scan(
		&o.ID, &o.Numero, &o.ClientID, &o.VehiculeID, &o.DevisID, &o.Description, &o.Statut,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste un nouvel ordre de réparation.
func (r *ODRRepo) Create(ctx context.Context, o *entity.OrdreReparation) error {
	query := `
		INSERT INTO ordres_reparation (id, numero, client_id, vehicule_id, devis_id,
			description, statut, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Numero, o.ClientID, o.VehiculeID, o.DevisID,
		o.Description, o.Statut, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert odr: %w", err)
	}
	return nil
}

// GetByID renvoie l'ODR ou (nil, nil) si absent.
func (r *ODRRepo) GetByID(ctx context.Context, id string) (*entity.OrdreReparation, error) {
	query := `SELECT ` + odrColumns + ` FROM ordres_reparation WHERE id = $1`
	o, err := scanODR(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get odr: %w", err)
	}
	return o, nil
}

// List renvoie une page d'ODR et le total.
func (r *ODRRepo) List(ctx context.Context, page repository.PageQuery) ([]*entity.OrdreReparation, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM ordres_reparation`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count odr: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM ordres_reparation %s LIMIT %d OFFSET %d`,
		odrColumns, orderClause(page.SortBy, page.SortOrder), page.Limit, page.Offset())
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("list odr: %w", err)
	}
	defer rows.Close()

	var list []*entity.OrdreReparation
	for rows.Next() {
		o, err := scanODR(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan odr: %w", err)
		}
		list = append(list, o)
	}
	return list, total, rows.Err()
}

// Update remplace les champs modifiables de l'ODR.
func (r *ODRRepo) Update(ctx context.Context, o *entity.OrdreReparation) error {
	query := `
		UPDATE ordres_reparation SET description = $2, statut = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, o.ID, o.Description, o.Statut, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update odr: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatut change uniquement le statut de l'ODR.
func (r *ODRRepo) UpdateStatut(ctx context.Context, id, statut string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE ordres_reparation SET statut = $2, updated_at = now() WHERE id = $1`, id, statut)
	if err != nil {
		return fmt.Errorf("update statut odr: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete supprime un ODR par ID.
func (r *ODRRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ordres_reparation WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete odr: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByVehicule compte les ODR rattachés à un véhicule.
func (r *ODRRepo) CountByVehicule(ctx context.Context, vehiculeID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM ordres_reparation WHERE vehicule_id = $1`, vehiculeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count odr by vehicule: %w", err)
	}
	return n, nil
}

// NextNumero renvoie le prochain numéro séquentiel d'ODR.
func (r *ODRRepo) NextNumero(ctx context.Context) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(SUBSTRING(numero FROM 5)::int), 0) + 1 FROM ordres_reparation`
	if err := r.q.QueryRow(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("next numero odr: %w", err)
	}
	return next, nil
}

// Stats répartition des ODR par statut.
func (r *ODRRepo) Stats(ctx context.Context) (*repository.ODRStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE statut = 'EN_COURS'),
			COUNT(*) FILTER (WHERE statut = 'TERMINE'),
			COUNT(*) FILTER (WHERE statut = 'ANNULE')
		FROM ordres_reparation`
	var s repository.ODRStats
	if err := r.q.QueryRow(ctx, query).Scan(&s.Total, &s.EnCours, &s.Termines, &s.Annules); err != nil {
		return nil, fmt.Errorf("stats odr: %w", err)
	}
	return &s, nil
}
