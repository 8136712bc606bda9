// Package htmlpage renders a print page as a self-contained HTML document:
// two copies side by side on an A4 sheet, styled for the browser print
// dialog.
package htmlpage

import (
	"html/template"
	"io"

	"oscell/internal/domain/document"
	"oscell/internal/usecase/interfaces"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: 'Inter', Arial, sans-serif; margin: 0; padding: 0; -webkit-print-color-adjust: exact; print-color-adjust: exact; }
.print-page-container { display: flex; justify-content: space-between; align-items: flex-start; width: 210mm; min-height: 297mm; padding: 5mm; box-sizing: border-box; gap: 2%; flex-wrap: nowrap; }
.os-copy { width: 49%; box-sizing: border-box; border: 1px solid #ccc; padding: 8px; margin: 0; page-break-inside: avoid; break-inside: avoid; font-size: 0.85em; line-height: 1.3; display: flex; flex-direction: column; justify-content: space-between; }
.header { text-align: center; margin-bottom: 8px; }
.header h1 { font-size: 1.6em; margin-bottom: 2px; color: #6a0dad; }
.header p { font-size: 0.85em; color: #555; margin: 2px 0; }
.section-title { font-size: 1.0em; border-bottom: 1px solid #eee; padding-bottom: 4px; margin-top: 10px; margin-bottom: 8px; font-weight: bold; color: #6a0dad; }
.info-grid { display: grid; grid-template-columns: 1fr; gap: 4px; margin-bottom: 8px; font-size: 0.85em; }
.info-item p { margin: 0; padding: 0; }
.info-item span { font-weight: bold; color: #444; }
.text-block { border: 1px solid #eee; padding: 6px; min-height: 50px; border-radius: 4px; background-color: #f9f9f9; font-size: 0.85em; white-space: pre-wrap; overflow-wrap: anywhere; }
.note { font-size: 0.8em; color: #555; }
.footer { margin-top: 15px; text-align: center; font-size: 0.75em; color: #777; width: 100%; }
.signature-line { border-top: 1px dashed #bbb; margin-top: 30px; padding-top: 2px; width: 90%; margin-left: auto; margin-right: auto; }
.signature-text { text-align: center; margin-top: 3px; }
.toolbar { padding: 8px 5mm; }
@media print {
  button, .toolbar { display: none; }
  @page { size: A4 portrait; margin: 0; }
}
</style>
</head>
<body>
<div class="toolbar"><button type="button" onclick="window.print()">Imprimir</button></div>
<div class="print-page-container">
{{- range .Copies}}
{{template "copy" .}}
{{- end}}
</div>
{{- if .AutoPrint}}
<script>window.addEventListener("load", function () { window.focus(); window.print(); });</script>
{{- end}}
</body>
</html>
{{define "copy"}}<div class="os-copy" data-number="{{.Number}}">
<div>
{{- range .Blocks}}
{{- if eq .Kind "heading"}}
<div class="header"><h1>{{.Title}}</h1>{{range .Lines}}<p>{{.}}</p>{{end}}</div>
{{- else if eq .Kind "key_values"}}
<div class="section-title">{{.Title}}</div>
<div class="info-grid">{{range .Fields}}<div class="info-item"><p><span>{{.Label}}:</span> {{.Value}}</p></div>{{end}}</div>
{{- else if eq .Kind "paragraph"}}
<div class="section-title">{{.Title}}</div>
{{if .Boxed}}<div class="text-block"><p>{{.Text}}</p></div>{{else}}<p class="note">{{.Text}}</p>{{end}}
{{- end}}
{{- end}}
</div>
{{- range .Blocks}}{{if eq .Kind "signatures"}}
<div class="footer">{{range .Lines}}<div class="signature-line"></div><div class="signature-text">{{.}}</div>{{end}}</div>
{{- end}}{{end}}
</div>{{end}}`

var tmpl = template.Must(template.New("page").Parse(pageTemplate))

// Renderer writes print pages. With AutoPrint the page opens the browser
// print dialog as soon as it loads.
type Renderer struct {
	AutoPrint bool
}

var _ interfaces.IPageRenderer = (*Renderer)(nil)

func New(autoPrint bool) *Renderer {
	return &Renderer{AutoPrint: autoPrint}
}

type pageData struct {
	Title     string
	Copies    [document.CopiesPerPage]document.Document
	AutoPrint bool
}

func (r *Renderer) Render(w io.Writer, page document.PrintPage) error {
	return tmpl.Execute(w, pageData{
		Title:     page.Title,
		Copies:    page.Copies,
		AutoPrint: r.AutoPrint,
	})
}
