// Package pdf implémente le rendu PDF des factures avec Maroto v2.
//
// Mise en page A4 :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER : Garage + N° Facture + Date                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENT : Nom + N° client + adresse + contact               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE : Qté | Désignation | P.U. TTC | Total TTC           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAUX : TOTAL TTC / échéance / statut                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/lbertrand/garage-api/internal/application/usecase"
	"github.com/lbertrand/garage-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.FacturePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implémente usecase.FacturePDFGenerator avec Maroto v2.
type MarotoPDFGenerator struct {
	nomGarage string
}

// NewMarotoPDFGenerator construit le générateur. nomGarage apparaît dans
// l'en-tête de chaque facture.
func NewMarotoPDFGenerator(nomGarage string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{nomGarage: nomGarage}
}

// GenerateFacturePDF rend la facture et renvoie les octets du document.
func (g *MarotoPDFGenerator) GenerateFacturePDF(
	_ context.Context,
	facture *entity.Facture,
	client *entity.Client,
	lignes []entity.LigneDevis,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Facture "+facture.Numero, true).
		WithAuthor(g.nomGarage, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.nomGarage, facture))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLigneRows(lignes) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totauxRow(facture))
	m.AddRows(footerRow(facture))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow : nom du garage (gauche), numéro et date de facture (droite).
func headerRow(nomGarage string, facture *entity.Facture) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nomGarage, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Atelier carrosserie & mécanique", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(facture.Numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date : "+facture.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow : identité et coordonnées du client facturé.
func clientRow(client *entity.Client) core.Row {
	nom := client.Prenom + " " + client.Nom
	if client.Entreprise != "" {
		nom = client.Entreprise + " — " + nom
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%s)", nom, client.NumeroClient), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s, %s %s   |   Tél : %s   |   %s",
				client.Adresse, client.CodePostal, client.Ville,
				client.Telephone, client.Email,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow : en-tête de la table des lignes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qté", 1, align.Center),
		h("Désignation", 6, align.Left),
		h("P.U. TTC", 2, align.Right),
		h("Total TTC", 3, align.Right),
	)
}

// tableLigneRows : une ligne de table par ligne de devis.
func tableLigneRows(lignes []entity.LigneDevis) []core.Row {
	result := make([]core.Row, 0, len(lignes))
	for _, l := range lignes {
		totalLigne := l.PrixUnitaireTTC.Mul(decimal.NewFromInt(int64(l.Quantite)))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantite),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.Designation,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.PrixUnitaireTTC.StringFixed(2)+" €",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				totalLigne.StringFixed(2)+" €",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totauxRow : total TTC aligné à droite.
func totauxRow(facture *entity.Facture) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			text.New("TOTAL TTC :", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New(facture.TotalTTC.StringFixed(2)+" €", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
		),
	)
}

// footerRow : échéance et statut de paiement.
func footerRow(facture *entity.Facture) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Échéance : %s   |   Statut : %s",
				facture.DateEcheance.Format("02/01/2006"), facture.StatutPaiement,
			), props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
	)
}
