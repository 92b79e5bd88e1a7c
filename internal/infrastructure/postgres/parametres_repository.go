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

var _ repository.ParametresRepository = (*ParametresRepo)(nil)

const parametresColumns = `id, tva_applicable, relance_auto, afficher_logo,
	modes_paiement_autorises, delai_alerte_jours, rapport_actif, rapport_frequence,
	rapport_email_destinataire, created_at, updated_at`

// ParametresRepo implémentation pgx de ParametresRepository.
type ParametresRepo struct {
	q Querier
}

// NewParametresRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewParametresRepository(q Querier) *ParametresRepo {
	return &ParametresRepo{q: q}
}

func scanParametres(row pgx.Row) (*entity.Parametres, error) {
	var p entity.Parametres
	err := row.Scan(
		&p.ID, &p.TVAApplicable, &p.RelanceAuto, &p.AfficherLogo,
		&p.ModesPaiementAutorises, &p.DelaiAlerteJours, &p.RapportActif, &p.RapportFrequence,
		&p.RapportEmailDestinataire, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetFirst renvoie la ligne unique de configuration, ou (nil, nil) si la table
// est vide.
func (r *ParametresRepo) GetFirst(ctx context.Context) (*entity.Parametres, error) {
	query := `SELECT ` + parametresColumns + ` FROM parametres ORDER BY created_at LIMIT 1`
	p, err := scanParametres(r.q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parametres: %w", err)
	}
	return p, nil
}

// Create insère la ligne de configuration.
func (r *ParametresRepo) Create(ctx context.Context, p *entity.Parametres) error {
	query := `
		INSERT INTO parametres (id, tva_applicable, relance_auto, afficher_logo,
			modes_paiement_autorises, delai_alerte_jours, rapport_actif, rapport_frequence,
			rapport_email_destinataire, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.TVAApplicable, p.RelanceAuto, p.AfficherLogo,
		p.ModesPaiementAutorises, p.DelaiAlerteJours, p.RapportActif, p.RapportFrequence,
		p.RapportEmailDestinataire, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert parametres: %w", err)
	}
	return nil
}

// Update remplace la configuration.
func (r *ParametresRepo) Update(ctx context.Context, p *entity.Parametres) error {
	query := `
		UPDATE parametres SET tva_applicable = $2, relance_auto = $3, afficher_logo = $4,
			modes_paiement_autorises = $5, delai_alerte_jours = $6, rapport_actif = $7,
			rapport_frequence = $8, rapport_email_destinataire = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.TVAApplicable, p.RelanceAuto, p.AfficherLogo,
		p.ModesPaiementAutorises, p.DelaiAlerteJours, p.RapportActif,
		p.RapportFrequence, p.RapportEmailDestinataire, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update parametres: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
