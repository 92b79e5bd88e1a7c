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

var _ repository.VehiculeRepository = (*VehiculeRepo)(nil)

const vehiculeColumns = `id, client_id, immatriculation, marque, modele, annee,
	numero_serie, kilometrage, created_at, updated_at`

// VehiculeRepo implémentation pgx de VehiculeRepository.
type VehiculeRepo struct {
	q Querier
}

// NewVehiculeRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewVehiculeRepository(q Querier) *VehiculeRepo {
	return &VehiculeRepo{q: q}
}

func scanVehicule(row pgx.Row) (*entity.Vehicule, error) {
	var v entity.Vehicule
	err := row.Scan(
		&v.ID, &v.ClientID, &v.Immatriculation, &v.Marque, &v.Modele, &v.Annee,
		&v.NumeroSerie, &v.Kilometrage, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste un nouveau véhicule.
func (r *VehiculeRepo) Create(ctx context.Context, v *entity.Vehicule) error {
	query := `
		INSERT INTO vehicules (id, client_id, immatriculation, marque, modele, annee,
			numero_serie, kilometrage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.ClientID, v.Immatriculation, v.Marque, v.Modele, v.Annee,
		v.NumeroSerie, v.Kilometrage, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehicule: %w", err)
	}
	return nil
}

// GetByID renvoie le véhicule ou (nil, nil) si absent.
func (r *VehiculeRepo) GetByID(ctx context.Context, id string) (*entity.Vehicule, error) {
	query := `SELECT ` + vehiculeColumns + ` FROM vehicules WHERE id = $1`
	v, err := scanVehicule(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicule: %w", err)
	}
	return v, nil
}

// GetByImmatriculation renvoie le véhicule portant cette plaque ou (nil, nil).
func (r *VehiculeRepo) GetByImmatriculation(ctx context.Context, immatriculation string) (*entity.Vehicule, error) {
	query := `SELECT ` + vehiculeColumns + ` FROM vehicules WHERE immatriculation = $1`
	v, err := scanVehicule(r.q.QueryRow(ctx, query, immatriculation))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicule by immatriculation: %w", err)
	}
	return v, nil
}

func (r *VehiculeRepo) queryPage(ctx context.Context, where string, page repository.PageQuery, args ...any) ([]*entity.Vehicule, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM vehicules `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vehicules: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM vehicules %s %s LIMIT %d OFFSET %d`,
		vehiculeColumns, where, orderClause(page.SortBy, page.SortOrder), page.Limit, page.Offset())
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vehicules: %w", err)
	}
	defer rows.Close()

	var list []*entity.Vehicule
	for rows.Next() {
		v, err := scanVehicule(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan vehicule: %w", err)
		}
		list = append(list, v)
	}
	return list, total, rows.Err()
}

// List renvoie une page de véhicules et le total.
func (r *VehiculeRepo) List(ctx context.Context, page repository.PageQuery) ([]*entity.Vehicule, int, error) {
	return r.queryPage(ctx, "", page)
}

// ListByClient renvoie tous les véhicules d'un client.
func (r *VehiculeRepo) ListByClient(ctx context.Context, clientID string) ([]*entity.Vehicule, error) {
	query := `SELECT ` + vehiculeColumns + ` FROM vehicules WHERE client_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list vehicules by client: %w", err)
	}
	defer rows.Close()

	var list []*entity.Vehicule
	for rows.Next() {
		v, err := scanVehicule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicule: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Search recherche plein-texte (ILIKE) sur plaque, marque et modèle.
func (r *VehiculeRepo) Search(ctx context.Context, term string, page repository.PageQuery) ([]*entity.Vehicule, int, error) {
	where := `WHERE immatriculation ILIKE $1 OR marque ILIKE $1 OR modele ILIKE $1`
	return r.queryPage(ctx, where, page, "%"+term+"%")
}

// Update remplace les champs modifiables du véhicule.
func (r *VehiculeRepo) Update(ctx context.Context, v *entity.Vehicule) error {
	query := `
		UPDATE vehicules SET immatriculation = $2, marque = $3, modele = $4, annee = $5,
			numero_serie = $6, kilometrage = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		v.ID, v.Immatriculation, v.Marque, v.Modele, v.Annee,
		v.NumeroSerie, v.Kilometrage, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vehicule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete supprime un véhicule par ID.
func (r *VehiculeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM vehicules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByClient compte les véhicules d'un client.
func (r *VehiculeRepo) CountByClient(ctx context.Context, clientID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM vehicules WHERE client_id = $1`, clientID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count vehicules by client: %w", err)
	}
	return n, nil
}

// Stats agrégats sur le parc.
func (r *VehiculeRepo) Stats(ctx context.Context) (*repository.VehiculeStats, error) {
	var s repository.VehiculeStats
	query := `SELECT COUNT(*), COUNT(DISTINCT marque) FROM vehicules`
	if err := r.q.QueryRow(ctx, query).Scan(&s.Total, &s.Marques); err != nil {
		return nil, fmt.Errorf("stats vehicules: %w", err)
	}
	return &s, nil
}
