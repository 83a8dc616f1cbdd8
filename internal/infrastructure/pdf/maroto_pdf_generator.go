// Package pdf implementa a exportação do plano alimentar em PDF para o
// cliente imprimir ou guardar offline.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título do plano  │  Período + status                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NUTRICIONISTA: Nome + CRN-UF                                │
//	│  CLIENTE: Nome                                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  REFEIÇÕES: uma seção por refeição (horário, alimentos,      │
//	│             porções)                                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ORIENTAÇÕES GERAIS                                          │
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

	"github.com/JanderLiborio20/softfit-sub000/internal/application/ports"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
)

var _ ports.PlanPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 120, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.PlanPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePlanPDF gera o PDF do plano e devolve seus bytes.
func (g *MarotoPDFGenerator) GeneratePlanPDF(
	_ context.Context,
	plan *entity.NutritionPlan,
	nutritionist *entity.NutritionistProfile,
	clientName string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plano Alimentar", true).
		WithAuthor(nutritionist.FullName(), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(plan))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(nutritionist, clientName))
	if plan.Description() != "" {
		m.AddRows(descriptionRow(plan.Description()))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, r := range mealRows(plan.PlannedMeals()) {
		m.AddRows(r)
	}

	if plan.GeneralGuidelines() != "" {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(guidelinesRows(plan.GeneralGuidelines())...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título do plano (esq) e período/status (dir).
func headerRow(plan *entity.NutritionPlan) core.Row {
	period := "Início: " + plan.StartDate().Format("02/01/2006")
	if end := plan.EndDate(); end != nil {
		period += "   |   Fim: " + end.Format("02/01/2006")
	}
	status := "PLANO ENCERRADO"
	if plan.IsActive() {
		status = "PLANO ATIVO"
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("PLANO ALIMENTAR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(plan.Title(), props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New(status, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// partiesRow: nutricionista responsável e cliente destinatário.
func partiesRow(nutritionist *entity.NutritionistProfile, clientName string) core.Row {
	crn := fmt.Sprintf("CRN %s-%s", nutritionist.CRN(), nutritionist.CRNState())
	return row.New(14).Add(
		col.New(6).Add(
			text.New("NUTRICIONISTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nutritionist.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(crn, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(clientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

func descriptionRow(description string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(description, props.Text{Size: 8.5, Color: colorGray, Top: 2}),
	))
}

// mealRows: uma seção por refeição planejada, com alimento e porção lado a lado.
func mealRows(meals []entity.PlannedMeal) []core.Row {
	var rows []core.Row
	for i, meal := range meals {
		title := fmt.Sprintf("%d. %s", i+1, meal.Name)
		if meal.ScheduledTime != "" {
			title += "  —  " + meal.ScheduledTime
		}
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			}),
		)))
		for j, food := range meal.Foods {
			portion := ""
			if j < len(meal.Portions) {
				portion = meal.Portions[j]
			}
			rows = append(rows, row.New(5).Add(
				col.New(7).Add(text.New("• "+food, props.Text{
					Size: 9, Top: 1, Left: 3,
				})),
				col.New(5).Add(text.New(portion, props.Text{
					Size: 9, Top: 1, Align: align.Right, Color: colorGray, Right: 2,
				})),
			))
		}
		rows = append(rows, row.New(2))
	}
	return rows
}

// guidelinesRows: bloco de orientações gerais ao final do documento.
func guidelinesRows(guidelines string) []core.Row {
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("ORIENTAÇÕES GERAIS", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		)),
		row.New(14).Add(col.New(12).Add(
			text.New(guidelines, props.Text{Size: 9, Top: 1, Color: colorGray}),
		)),
	}
}
