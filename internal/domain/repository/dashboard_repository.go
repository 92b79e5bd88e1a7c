package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardCounts compteurs d'activité affichés sur le tableau de bord.
type DashboardCounts struct {
	DevisEnAttente   int
	ODREnCours       int
	FacturesImpayees int
	TotalClients     int
}

// DashboardRepository consultations read-only pour le tableau de bord.
type DashboardRepository interface {
	// ChiffreAffaires somme du TTC des factures émises sur [start, end],
	// hors factures annulées.
	ChiffreAffaires(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	Counts(ctx context.Context) (*DashboardCounts, error)
	// FacturesEnRetard compte les factures non soldées dont l'échéance tombe
	// avant now + delaiAlerteJours.
	FacturesEnRetard(ctx context.Context, now time.Time, delaiAlerteJours int) (int, error)
}
