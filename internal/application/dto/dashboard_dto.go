package dto

import "github.com/shopspring/decimal"

// DashboardResponse résumé d'activité du tableau de bord.
type DashboardResponse struct {
	CAJour           decimal.Decimal `json:"caJour"`
	CAMois           decimal.Decimal `json:"caMois"`
	DevisEnAttente   int             `json:"devisEnAttente"`
	ODREnCours       int             `json:"odrEnCours"`
	FacturesImpayees int             `json:"facturesImpayees"`
	FacturesEnRetard int             `json:"facturesEnRetard"`
	TotalClients     int             `json:"totalClients"`
	Periode          string          `json:"periode"` // ex: "Août 2026"
}
