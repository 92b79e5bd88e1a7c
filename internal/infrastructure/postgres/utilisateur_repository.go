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

var _ repository.UtilisateurRepository = (*UtilisateurRepo)(nil)

const utilisateurColumns = `id, email, mot_de_passe_hash, nom, role, created_at, updated_at`

// UtilisateurRepo implémentation pgx de UtilisateurRepository.
type UtilisateurRepo struct {
	q Querier
}

// NewUtilisateurRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewUtilisateurRepository(q Querier) *UtilisateurRepo {
	return &UtilisateurRepo{q: q}
}

func scanUtilisateur(row pgx.Row) (*entity.Utilisateur, error) {
	var u entity.Utilisateur
	err := row.Scan(&u.ID, &u.Email, &u.MotDePasseHash, &u.Nom, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nouveau compte.
func (r *UtilisateurRepo) Create(ctx context.Context, u *entity.Utilisateur) error {
	query := `
		INSERT INTO utilisateurs (id, email, mot_de_passe_hash, nom, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Email, u.MotDePasseHash, u.Nom, u.Role, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert utilisateur: %w", err)
	}
	return nil
}

// GetByID renvoie le compte ou (nil, nil) si absent.
func (r *UtilisateurRepo) GetByID(ctx context.Context, id string) (*entity.Utilisateur, error) {
	query := `SELECT ` + utilisateurColumns + ` FROM utilisateurs WHERE id = $1`
	u, err := scanUtilisateur(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get utilisateur: %w", err)
	}
	return u, nil
}

// GetByEmail renvoie le compte portant cet email ou (nil, nil).
func (r *UtilisateurRepo) GetByEmail(ctx context.Context, email string) (*entity.Utilisateur, error) {
	query := `SELECT ` + utilisateurColumns + ` FROM utilisateurs WHERE email = $1`
	u, err := scanUtilisateur(r.q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get utilisateur by email: %w", err)
	}
	return u, nil
}
