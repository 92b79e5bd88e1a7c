package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Familles de prestation.
const (
	FamilleCarrosserie = "CARROSSERIE"
	FamilleMecanique   = "MECANIQUE"
)

// Prestation représente une prestation du catalogue (main d'œuvre, forfait...).
type Prestation struct {
	ID          string
	Nom         string
	Description string
	Famille     string // CARROSSERIE | MECANIQUE
	PrixBase    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
