package document

import "fmt"

// A4 portrait geometry, in millimetres.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
	PageMarginMM = 5.0
)

// CopiesPerPage is fixed: the shop keeps one copy and the client the other.
const CopiesPerPage = 2

// PrintPage is one physical page carrying identical copies of an order side
// by side. Each copy must stay whole on the page.
type PrintPage struct {
	Title  string
	Number string
	Copies [CopiesPerPage]Document
}

func NewPrintPage(doc Document) PrintPage {
	return PrintPage{
		Title:  PageTitle(doc.Number),
		Number: doc.Number,
		Copies: [CopiesPerPage]Document{doc, doc},
	}
}

func PageTitle(number string) string {
	return fmt.Sprintf("Ordem de Serviço %s", number)
}

// PDFFileName names a downloaded order after its literal number.
func PDFFileName(number string) string {
	return fmt.Sprintf("Ordem_Servico_%s.pdf", number)
}
