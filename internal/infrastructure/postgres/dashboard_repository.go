package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lbertrand/garage-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultations read-only pour le tableau de bord.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// ChiffreAffaires somme le TTC des factures émises sur [start, end], hors
// factures annulées.
func (r *DashboardRepo) ChiffreAffaires(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_ttc), 0)
		FROM factures
		WHERE statut_paiement <> 'ANNULEE' AND created_at >= $1 AND created_at <= $2`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("chiffre affaires: %w", err)
	}
	return total, nil
}

// Counts compteurs d'activité, calculés en une seule requête.
func (r *DashboardRepo) Counts(ctx context.Context) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM devis WHERE statut = 'EN_ATTENTE'),
			(SELECT COUNT(*) FROM ordres_reparation WHERE statut = 'EN_COURS'),
			(SELECT COUNT(*) FROM factures WHERE statut_paiement = 'IMPAYEE'),
			(SELECT COUNT(*) FROM clients)`
	var c repository.DashboardCounts
	err := r.q.QueryRow(ctx, query).Scan(
		&c.DevisEnAttente, &c.ODREnCours, &c.FacturesImpayees, &c.TotalClients,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}

// FacturesEnRetard compte les factures non soldées dont l'échéance tombe avant
// now + delaiAlerteJours.
func (r *DashboardRepo) FacturesEnRetard(ctx context.Context, now time.Time, delaiAlerteJours int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM factures
		WHERE statut_paiement NOT IN ('PAYEE', 'ANNULEE') AND date_echeance <= $1`
	var n int
	seuil := now.AddDate(0, 0, delaiAlerteJours)
	if err := r.q.QueryRow(ctx, query, seuil).Scan(&n); err != nil {
		return 0, fmt.Errorf("factures en retard: %w", err)
	}
	return n, nil
}
