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

var _ repository.FactureRepository = (*FactureRepo)(nil)

const factureColumns = `id, numero, client_id, odr_id, devis_id, total_ttc,
	statut_paiement, date_echeance, created_at, updated_at`

// FactureRepo implémentation pgx de FactureRepository.
type FactureRepo struct {
	q Querier
}

// NewFactureRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewFactureRepository(q Querier) *FactureRepo {
	return &FactureRepo{q: q}
}

func scanFacture(row pgx.Row) (*entity.Facture, error) {
	var f entity.Facture
	err := row.Scan(
		&f.ID, &f.Numero, &f.ClientID, &f.ODRID, &f.DevisID, &f.TotalTTC,
		&f.StatutPaiement, &f.DateEcheance, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create persiste une nouvelle facture.
func (r *FactureRepo) Create(ctx context.Context, f *entity.Facture) error {
	query := `
		INSERT INTO factures (id, numero, client_id, odr_id, devis_id, total_ttc,
			statut_paiement, date_echeance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.Numero, f.ClientID, f.ODRID, f.DevisID, f.TotalTTC,
		f.StatutPaiement, f.DateEcheance, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert facture: %w", err)
	}
	return nil
}

// GetByID renvoie la facture ou (nil, nil) si absente.
func (r *FactureRepo) GetByID(ctx context.Context, id string) (*entity.Facture, error) {
	query := `SELECT ` + factureColumns + ` FROM factures WHERE id = $1`
	f, err := scanFacture(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get facture: %w", err)
	}
	return f, nil
}

// List renvoie une page de factures et le total.
func (r *FactureRepo) List(ctx context.Context, page repository.PageQuery) ([]*entity.Facture, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM factures`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count factures: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM factures %s LIMIT %d OFFSET %d`,
		factureColumns, orderClause(page.SortBy, page.SortOrder), page.Limit, page.Offset())
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("list factures: %w", err)
	}
	defer rows.Close()

	var list []*entity.Facture
	for rows.Next() {
		f, err := scanFacture(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan facture: %w", err)
		}
		list = append(list, f)
	}
	return list, total, rows.Err()
}

// Update remplace les champs modifiables de la facture.
func (r *FactureRepo) Update(ctx context.Context, f *entity.Facture) error {
	query := `
		UPDATE factures SET total_ttc = $2, statut_paiement = $3, date_echeance = $4,
			updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, f.ID, f.TotalTTC, f.StatutPaiement, f.DateEcheance, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update facture: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatutPaiement change uniquement le statut de paiement.
func (r *FactureRepo) UpdateStatutPaiement(ctx context.Context, id, statut string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE factures SET statut_paiement = $2, updated_at = now() WHERE id = $1`, id, statut)
	if err != nil {
		return fmt.Errorf("update statut paiement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete supprime une facture par ID.
func (r *FactureRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM factures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete facture: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByClient compte les factures d'un client.
func (r *FactureRepo) CountByClient(ctx context.Context, clientID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM factures WHERE client_id = $1`, clientID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count factures by client: %w", err)
	}
	return n, nil
}

// NextNumero renvoie le prochain numéro séquentiel de facture.
func (r *FactureRepo) NextNumero(ctx context.Context) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(SUBSTRING(numero FROM 5)::int), 0) + 1 FROM factures`
	if err := r.q.QueryRow(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("next numero facture: %w", err)
	}
	return next, nil
}

// Stats répartition par statut de paiement et montant restant dû.
func (r *FactureRepo) Stats(ctx context.Context) (*repository.FactureStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE statut_paiement = 'EN_ATTENTE'),
			COUNT(*) FILTER (WHERE statut_paiement = 'PAYEE'),
			COUNT(*) FILTER (WHERE statut_paiement = 'PARTIELLEMENT_PAYEE'),
			COUNT(*) FILTER (WHERE statut_paiement = 'IMPAYEE'),
			COUNT(*) FILTER (WHERE statut_paiement = 'ANNULEE'),
			COALESCE(SUM(total_ttc) FILTER (WHERE statut_paiement IN ('EN_ATTENTE', 'PARTIELLEMENT_PAYEE', 'IMPAYEE')), 0)
		FROM factures`
	var s repository.FactureStats
	err := r.q.QueryRow(ctx, query).Scan(
		&s.Total, &s.EnAttente, &s.Payees, &s.Partielles, &s.Impayees, &s.Annulees, &s.MontantImpaye,
	)
	if err != nil {
		return nil, fmt.Errorf("stats factures: %w", err)
	}
	return &s, nil
}
