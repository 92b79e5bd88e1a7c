package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase construit le résumé d'activité du jour et du mois en
// cours. Source de données : DashboardRepository (consultations read-only) ;
// le délai d'alerte d'échéance provient des paramètres.
type DashboardUseCase struct {
	repo       repository.DashboardRepository
	parametres *ParametresUseCase
}

// NewDashboardUseCase construit le cas d'usage.
func NewDashboardUseCase(repo repository.DashboardRepository, parametres *ParametresUseCase) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, parametres: parametres}
}

// GetSummary assemble le tableau de bord. Quatre requêtes sont lancées en
// parallèle : CA du jour, CA du mois, compteurs d'activité et factures en
// retard.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()

	jourDebut := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	jourFin := jourDebut.Add(24*time.Hour - time.Nanosecond)
	moisDebut := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	delai, err := uc.parametres.DelaiAlerte(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: délai d'alerte: %w", err)
	}

	type caResult struct {
		montant decimal.Decimal
		err     error
	}
	type countsResult struct {
		counts *repository.DashboardCounts
		err    error
	}
	type retardResult struct {
		n   int
		err error
	}

	jourCh := make(chan caResult, 1)
	moisCh := make(chan caResult, 1)
	countsCh := make(chan countsResult, 1)
	retardCh := make(chan retardResult, 1)

	go func() {
		montant, err := uc.repo.ChiffreAffaires(ctx, jourDebut, jourFin)
		jourCh <- caResult{montant, err}
	}()
	go func() {
		montant, err := uc.repo.ChiffreAffaires(ctx, moisDebut, jourFin)
		moisCh <- caResult{montant, err}
	}()
	go func() {
		counts, err := uc.repo.Counts(ctx)
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		n, err := uc.repo.FacturesEnRetard(ctx, now, delai)
		retardCh <- retardResult{n, err}
	}()

	jour := <-jourCh
	mois := <-moisCh
	counts := <-countsCh
	retard := <-retardCh

	if jour.err != nil {
		return nil, fmt.Errorf("dashboard: CA du jour: %w", jour.err)
	}
	if mois.err != nil {
		return nil, fmt.Errorf("dashboard: CA du mois: %w", mois.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: compteurs: %w", counts.err)
	}
	if retard.err != nil {
		return nil, fmt.Errorf("dashboard: factures en retard: %w", retard.err)
	}

	return &dto.DashboardResponse{
		CAJour:           jour.montant.Round(2),
		CAMois:           mois.montant.Round(2),
		DevisEnAttente:   counts.counts.DevisEnAttente,
		ODREnCours:       counts.counts.ODREnCours,
		FacturesImpayees: counts.counts.FacturesImpayees,
		FacturesEnRetard: retard.n,
		TotalClients:     counts.counts.TotalClients,
		Periode:          libelleMois(now),
	}, nil
}

// libelleMois renvoie une étiquette lisible du mois, ex: "Août 2026".
func libelleMois(t time.Time) string {
	mois := [...]string{
		"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
	}
	return fmt.Sprintf("%s %d", mois[t.Month()-1], t.Year())
}
