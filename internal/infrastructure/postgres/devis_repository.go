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

var _ repository.DevisRepository = (*DevisRepo)(nil)

const devisColumns = `id, numero, client_id, vehicule_id, famille, statut, date_validite,
	conditions_paiement, acompte_pourcent, modes_paiement, total_ttc, created_at, updated_at`

// DevisRepo implémentation pgx de DevisRepository. Create et Update doivent
// tourner dans une transaction (TxRunner) : l'entête et les lignes sont
// persistés en deux temps.
type DevisRepo struct {
	q Querier
}

// NewDevisRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewDevisRepository(q Querier) *DevisRepo {
	return &DevisRepo{q: q}
}

func scanDevis(row pgx.Row) (*entity.Devis, error) {
	var d entity.Devis
	err := row.Scan(
		&d.ID, &d.Numero, &d.ClientID, &d.VehiculeID, &d.Famille, &d.Statut, &d.DateValidite,
		&d.ConditionsPaiement, &d.AcomptePourcent, &d.ModesPaiement, &d.TotalTTC,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DevisRepo) insertLignes(ctx context.Context, devisID string, lignes []entity.LigneDevis) error {
	query := `
		INSERT INTO devis_lignes (id, devis_id, designation, prix_unitaire_ttc, quantite, prestation_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, l := range lignes {
		_, err := r.q.Exec(ctx, query,
			l.ID, devisID, l.Designation, l.PrixUnitaireTTC, l.Quantite, l.PrestationID,
		)
		if err != nil {
			return fmt.Errorf("insert ligne devis: %w", err)
		}
	}
	return nil
}

func (r *DevisRepo) loadLignes(ctx context.Context, devisID string) ([]entity.LigneDevis, error) {
	query := `
		SELECT id, devis_id, designation, prix_unitaire_ttc, quantite, prestation_id
		FROM devis_lignes WHERE devis_id = $1 ORDER BY designation`
	rows, err := r.q.Query(ctx, query, devisID)
	if err != nil {
		return nil, fmt.Errorf("load lignes devis: %w", err)
	}
	defer rows.Close()

	var lignes []entity.LigneDevis
	for rows.Next() {
		var l entity.LigneDevis
		if err := rows.Scan(&l.ID, &l.DevisID, &l.Designation, &l.PrixUnitaireTTC, &l.Quantite, &l.PrestationID); err != nil {
			return nil, fmt.Errorf("scan ligne devis: %w", err)
		}
		lignes = append(lignes, l)
	}
	return lignes, rows.Err()
}

// Create persiste l'entête du devis puis ses lignes.
func (r *DevisRepo) Create(ctx context.Context, d *entity.Devis) error {
	query := `
		INSERT INTO devis (id, numero, client_id, vehicule_id, famille, statut, date_validite,
			conditions_paiement, acompte_pourcent, modes_paiement, total_ttc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Numero, d.ClientID, d.VehiculeID, d.Famille, d.Statut, d.DateValidite,
		d.ConditionsPaiement, d.AcomptePourcent, d.ModesPaiement, d.TotalTTC,
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert devis: %w", err)
	}
	return r.insertLignes(ctx, d.ID, d.Lignes)
}

// GetByID renvoie le devis avec ses lignes, ou (nil, nil) si absent.
func (r *DevisRepo) GetByID(ctx context.Context, id string) (*entity.Devis, error) {
	query := `SELECT ` + devisColumns + ` FROM devis WHERE id = $1`
	d, err := scanDevis(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get devis: %w", err)
	}
	if d.Lignes, err = r.loadLignes(ctx, d.ID); err != nil {
		return nil, err
	}
	return d, nil
}

// List renvoie une page de devis (sans lignes) et le total.
func (r *DevisRepo) List(ctx context.Context, page repository.PageQuery) ([]*entity.Devis, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM devis`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count devis: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM devis %s LIMIT %d OFFSET %d`,
		devisColumns, orderClause(page.SortBy, page.SortOrder), page.Limit, page.Offset())
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("list devis: %w", err)
	}
	defer rows.Close()

	var list []*entity.Devis
	for rows.Next() {
		d, err := scanDevis(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan devis: %w", err)
		}
		list = append(list, d)
	}
	return list, total, rows.Err()
}

// Update remplace l'entête du devis et réécrit toutes ses lignes.
func (r *DevisRepo) Update(ctx context.Context, d *entity.Devis) error {
	query := `
		UPDATE devis SET famille = $2, statut = $3, date_validite = $4,
			conditions_paiement = $5, acompte_pourcent = $6, modes_paiement = $7,
			total_ttc = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		d.ID, d.Famille, d.Statut, d.DateValidite,
		d.ConditionsPaiement, d.AcomptePourcent, d.ModesPaiement,
		d.TotalTTC, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update devis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM devis_lignes WHERE devis_id = $1`, d.ID); err != nil {
		return fmt.Errorf("delete lignes devis: %w", err)
	}
	return r.insertLignes(ctx, d.ID, d.Lignes)
}

// UpdateStatut change uniquement le statut du devis.
func (r *DevisRepo) UpdateStatut(ctx context.Context, id, statut string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE devis SET statut = $2, updated_at = now() WHERE id = $1`, id, statut)
	if err != nil {
		return fmt.Errorf("update statut devis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete supprime un devis ; ses lignes suivent (ON DELETE CASCADE).
func (r *DevisRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM devis WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete devis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByVehicule compte les devis rattachés à un véhicule.
func (r *DevisRepo) CountByVehicule(ctx context.Context, vehiculeID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM devis WHERE vehicule_id = $1`, vehiculeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count devis by vehicule: %w", err)
	}
	return n, nil
}

// CountByClient compte les devis rattachés à un client.
func (r *DevisRepo) CountByClient(ctx context.Context, clientID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM devis WHERE client_id = $1`, clientID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count devis by client: %w", err)
	}
	return n, nil
}

// NextNumero renvoie le prochain numéro séquentiel de devis.
func (r *DevisRepo) NextNumero(ctx context.Context) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(SUBSTRING(numero FROM 5)::int), 0) + 1 FROM devis`
	if err := r.q.QueryRow(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("next numero devis: %w", err)
	}
	return next, nil
}

// Stats répartition des devis par statut.
func (r *DevisRepo) Stats(ctx context.Context) (*repository.DevisStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE statut = 'EN_ATTENTE'),
			COUNT(*) FILTER (WHERE statut = 'ACCEPTE'),
			COUNT(*) FILTER (WHERE statut = 'REFUSE'),
			COUNT(*) FILTER (WHERE statut = 'EXPIRE')
		FROM devis`
	var s repository.DevisStats
	if err := r.q.QueryRow(ctx, query).Scan(&s.Total, &s.EnAttente, &s.Acceptes, &s.Refuses, &s.Expires); err != nil {
		return nil, fmt.Errorf("stats devis: %w", err)
	}
	return &s, nil
}
