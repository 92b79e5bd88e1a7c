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

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, numero_client, prenom, nom, entreprise, telephone, email,
	adresse, ville, code_postal, type_client, created_at, updated_at`

// ClientRepo implémentation pgx de ClientRepository (utilisable avec pool ou tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.NumeroClient, &c.Prenom, &c.Nom, &c.Entreprise, &c.Telephone, &c.Email,
		&c.Adresse, &c.Ville, &c.CodePostal, &c.TypeClient, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nouveau client.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, numero_client, prenom, nom, entreprise, telephone, email,
			adresse, ville, code_postal, type_client, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.NumeroClient, c.Prenom, c.Nom, c.Entreprise, c.Telephone, c.Email,
		c.Adresse, c.Ville, c.CodePostal, c.TypeClient, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID renvoie le client ou (nil, nil) si absent.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// GetByEmail renvoie le client portant cet email ou (nil, nil).
func (r *ClientRepo) GetByEmail(ctx context.Context, email string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE email = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by email: %w", err)
	}
	return c, nil
}

func (r *ClientRepo) queryPage(ctx context.Context, where string, page repository.PageQuery, args ...any) ([]*entity.Client, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clients `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM clients %s %s LIMIT %d OFFSET %d`,
		clientColumns, where, orderClause(page.SortBy, page.SortOrder), page.Limit, page.Offset())
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// List renvoie une page de clients et le total.
func (r *ClientRepo) List(ctx context.Context, page repository.PageQuery) ([]*entity.Client, int, error) {
	return r.queryPage(ctx, "", page)
}

// Search recherche plein-texte (ILIKE) sur nom, prénom, email, téléphone et
// numéro client.
func (r *ClientRepo) Search(ctx context.Context, term string, page repository.PageQuery) ([]*entity.Client, int, error) {
	where := `WHERE nom ILIKE $1 OR prenom ILIKE $1 OR email ILIKE $1
		OR telephone ILIKE $1 OR numero_client ILIKE $1`
	return r.queryPage(ctx, where, page, "%"+term+"%")
}

// Update remplace les champs modifiables du client.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET prenom = $2, nom = $3, entreprise = $4, telephone = $5,
			email = $6, adresse = $7, ville = $8, code_postal = $9, type_client = $10,
			updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Prenom, c.Nom, c.Entreprise, c.Telephone,
		c.Email, c.Adresse, c.Ville, c.CodePostal, c.TypeClient, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete supprime un client par ID.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextNumero renvoie le prochain numéro séquentiel de client.
func (r *ClientRepo) NextNumero(ctx context.Context) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(SUBSTRING(numero_client FROM 5)::int), 0) + 1 FROM clients`
	if err := r.q.QueryRow(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("next numero client: %w", err)
	}
	return next, nil
}

// Stats agrégats par type de client.
func (r *ClientRepo) Stats(ctx context.Context) (*repository.ClientStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE type_client = 'NORMAL'),
			COUNT(*) FILTER (WHERE type_client = 'GRAND_COMPTE')
		FROM clients`
	var s repository.ClientStats
	if err := r.q.QueryRow(ctx, query).Scan(&s.Total, &s.Normaux, &s.GrandsComptes); err != nil {
		return nil, fmt.Errorf("stats clients: %w", err)
	}
	return &s, nil
}
