// Package document holds the layout-independent model of a printed work
// order. Both rendering backends (HTML print page and raster/PDF) consume the
// same Document, so neither has to recover structure from the other's output.
package document

import (
	"fmt"
	"strings"

	"oscell/internal/domain/entities"
)

// Placeholder replaces empty free-text values so no section prints blank.
const Placeholder = "N/A"

type BlockKind string

const (
	BlockHeading    BlockKind = "heading"
	BlockKeyValues  BlockKind = "key_values"
	BlockParagraph  BlockKind = "paragraph"
	BlockSignatures BlockKind = "signatures"
)

type Field struct {
	Label string
	Value string
}

// Block is one typed section of a document. Which fields are meaningful
// depends on Kind:
//   - heading: Title, Lines
//   - key_values: Title, Fields
//   - paragraph: Title, Text (Boxed frames the text)
//   - signatures: Lines (one caption per signature line)
type Block struct {
	Kind   BlockKind
	Title  string
	Lines  []string
	Fields []Field
	Text   string
	Boxed  bool
}

type Document struct {
	Number string
	Blocks []Block
}

// ShopProfile is the shop identity printed on every order.
type ShopProfile struct {
	Name              string
	Tagline           string
	CurrencyPrefix    string
	WarrantyText      string
	DefaultTechnician string
}

// BuildWorkOrder lays out one copy of a work order.
func BuildWorkOrder(shop ShopProfile, draft entities.WorkOrderDraft, number string) Document {
	// Invalid values render as zero; callers validate the draft before emitting.
	serviceValue, _ := draft.ServiceAmount()
	technician := strings.TrimSpace(draft.TechnicianName)
	if technician == "" {
		technician = orPlaceholder(shop.DefaultTechnician)
	}

	return Document{
		Number: number,
		Blocks: []Block{
			{
				Kind:  BlockHeading,
				Title: shop.Name,
				Lines: []string{
					shop.Tagline,
					fmt.Sprintf("Ordem de Serviço Nº: %s | Data: %s", number, orPlaceholder(draft.Date)),
				},
			},
			{
				Kind:  BlockKeyValues,
				Title: "Dados do Cliente",
				Fields: []Field{
					{Label: "Nome", Value: orPlaceholder(draft.ClientName)},
					{Label: "Telefone", Value: orPlaceholder(draft.ClientPhone)},
				},
			},
			{
				Kind:   BlockKeyValues,
				Title:  "Dados do Aparelho",
				Fields: []Field{{Label: "Tipo", Value: orPlaceholder(draft.DeviceName)}},
			},
			{Kind: BlockParagraph, Title: "Problema Relatado", Text: orPlaceholder(draft.ProblemReported), Boxed: true},
			{Kind: BlockParagraph, Title: "Serviço Executado / Diagnóstico", Text: orPlaceholder(draft.ServiceDescription), Boxed: true},
			{
				Kind:  BlockKeyValues,
				Title: "Valores",
				Fields: []Field{
					{Label: "Valor do Serviço", Value: entities.FormatMoney(shop.CurrencyPrefix, serviceValue)},
					{Label: "Valor Total", Value: entities.FormatMoney(shop.CurrencyPrefix, draft.TotalValue())},
				},
			},
			{Kind: BlockParagraph, Title: "Garantia", Text: orPlaceholder(shop.WarrantyText)},
			{Kind: BlockSignatures, Lines: []string{"Assinatura do Cliente", technician}},
		},
	}
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return strings.TrimSpace(s)
}
