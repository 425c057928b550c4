// Package pdf gera a folha impressa de uma ordem de serviço.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: ORDEM DE SERVIÇO Nº  │  Status + Datas             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nome / contato / endereço                         │
//	│  EQUIPAMENTO: tipo, marca, modelo, nº de série              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCRIÇÃO DO SERVIÇO                                       │
//	│  TÉCNICO RESPONSÁVEL                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ASSINATURAS: técnico | cliente                             │
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

	"github.com/jpfarias/assistec-api/internal/application/usecase"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var statusLabels = map[string]string{
	entity.StatusOpen:       "ABERTA",
	entity.StatusInProgress: "EM ANDAMENTO",
	entity.StatusClosed:     "FECHADA",
}

var _ usecase.OrderPDFGenerator = (*MarotoOrderSheet)(nil)

// MarotoOrderSheet implementa usecase.OrderPDFGenerator usando Maroto v2.
type MarotoOrderSheet struct{}

// NewMarotoOrderSheet constrói o gerador.
func NewMarotoOrderSheet() *MarotoOrderSheet { return &MarotoOrderSheet{} }

// GenerateOrderPDF gera o PDF e devolve seus bytes.
func (g *MarotoOrderSheet) GenerateOrderPDF(
	_ context.Context,
	order *entity.ServiceOrder,
	client *entity.Client,
	equipment *entity.Equipment,
	technician *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Ordem de Serviço Nº %d", order.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRows(client)...)
	m.AddRows(equipmentRows(equipment)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(descriptionRows(order)...)
	m.AddRows(technicianRow(technician))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: número da OS (esq) e status + datas (dir).
func headerRow(order *entity.ServiceOrder) core.Row {
	status := statusLabels[order.Status]
	if status == "" {
		status = order.Status
	}
	return row.New(20).Add(
		col.New(7).Add(
			text.New(fmt.Sprintf("ORDEM DE SERVIÇO Nº %d", order.ID), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(order.Title, props.Text{Size: 10, Top: 10}),
		),
		col.New(5).Add(
			text.New("Status: "+status, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Aberta em: "+order.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Atualizada em: "+order.UpdatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func clientRows(client *entity.Client) []core.Row {
	rows := []core.Row{sectionTitle("CLIENTE")}
	if client == nil {
		return append(rows, textRow("— cliente removido —", colorGray))
	}
	rows = append(rows, textRow(client.Name, nil))
	contact := joinNonEmpty(deref(client.Phone), deref(client.Email))
	if contact != "" {
		rows = append(rows, textRow(contact, colorGray))
	}
	if client.Address != nil && *client.Address != "" {
		rows = append(rows, textRow(*client.Address, colorGray))
	}
	return rows
}

func equipmentRows(equipment *entity.Equipment) []core.Row {
	rows := []core.Row{sectionTitle("EQUIPAMENTO")}
	if equipment == nil {
		return append(rows, textRow("— equipamento removido —", colorGray))
	}
	rows = append(rows, textRow(joinNonEmpty(equipment.Type, equipment.Brand, equipment.Model), nil))
	rows = append(rows, textRow("Nº de série: "+equipment.SerialNumber, colorGray))
	return rows
}

func descriptionRows(order *entity.ServiceOrder) []core.Row {
	rows := []core.Row{sectionTitle("DESCRIÇÃO DO SERVIÇO")}
	desc := deref(order.Description)
	if desc == "" {
		desc = "— sem descrição —"
	}
	return append(rows, row.New(18).Add(col.New(12).Add(
		text.New(desc, props.Text{Size: 9, Top: 1}),
	)))
}

func technicianRow(technician *entity.User) core.Row {
	name := "— não atribuído —"
	if technician != nil {
		name = technician.Username
		if technician.Name != nil && *technician.Name != "" {
			name = *technician.Name
		}
	}
	return row.New(8).Add(col.New(12).Add(
		text.New("Técnico responsável: "+name, props.Text{Size: 9, Style: fontstyle.Bold, Top: 1}),
	))
}

func signatureRow() core.Row {
	return row.New(24).Add(
		col.New(6).Add(
			text.New("_____________________________", props.Text{Size: 9, Top: 12, Align: align.Center}),
			text.New("Assinatura do técnico", props.Text{Size: 8, Top: 18, Align: align.Center, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("_____________________________", props.Text{Size: 9, Top: 12, Align: align.Center}),
			text.New("Assinatura do cliente", props.Text{Size: 8, Top: 18, Align: align.Center, Color: colorGray}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary, Top: 2}),
	))
}

func textRow(s string, color *props.Color) core.Row {
	p := props.Text{Size: 9, Top: 1}
	if color != nil {
		p.Color = color
	}
	return row.New(5).Add(col.New(12).Add(text.New(s, p)))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " · "
		}
		out += p
	}
	return out
}
