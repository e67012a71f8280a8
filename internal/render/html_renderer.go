package render

import (
	"bytes"
	"html/template"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/money"
)

const budgetHTMLTemplate = `<!doctype html>
<html lang="pt-BR">
<head>
  <meta charset="utf-8" />
  <title>Orçamento - {{.Client.Name}}</title>
  <style>
    :root {
      --primary: {{templateColor .Template}};
      --font: {{templateFont .Template}};
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 0;
      font-family: var(--font), "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .page {
      /* A4 proportions; the rendered surface grows taller than one page
         when the item list does */
      width: 210mm;
      min-height: 297mm;
      margin: 0 auto;
      padding: 18mm 16mm;
    }
    .header {
      display: flex;
      justify-content: space-between;
      border-bottom: 3px solid var(--primary);
      padding-bottom: 12px;
      margin-bottom: 20px;
    }
    .header h1 {
      margin: 0;
      color: var(--primary);
      font-size: 26px;
    }
    .meta { text-align: right; font-size: 13px; color: #6b7280; }
    .client { margin-bottom: 20px; font-size: 14px; line-height: 1.5; }
    .client .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    table { width: 100%; border-collapse: collapse; font-size: 14px; }
    th, td { padding: 9px 10px; text-align: left; }
    thead th {
      background: var(--primary);
      color: #ffffff;
      font-weight: 600;
    }
    tbody tr:nth-child(even) { background: #f9fafb; }
    td.num, th.num { text-align: right; }
    .totals {
      display: flex;
      justify-content: flex-end;
      gap: 24px;
      margin-top: 14px;
      font-size: 16px;
    }
    .notes {
      margin-top: 24px;
      padding: 12px;
      background: #f3f4f6;
      border-left: 3px solid var(--primary);
      font-size: 13px;
      white-space: pre-wrap;
    }
  </style>
</head>
<body>
  <div class="page">
    <div class="header">
      <h1>Orçamento</h1>
      <div class="meta">
        <div>{{.Date}}</div>
      </div>
    </div>

    <div class="client">
      <div class="label">Cliente</div>
      <div><strong>{{.Client.Name}}</strong></div>
      {{if .Client.Email}}<div>{{.Client.Email}}</div>{{end}}
      {{if .Client.Phone}}<div>{{.Client.Phone}}</div>{{end}}
      {{if .Client.Address}}<div>{{.Client.Address}}{{if .Client.City}}, {{.Client.City}}{{end}}{{if .Client.ZipCode}} - {{.Client.ZipCode}}{{end}}</div>{{end}}
    </div>

    <table>
      <thead>
        <tr>
          <th>Item</th>
          <th>Descrição</th>
          <th class="num">Qtd.</th>
          <th class="num">Preço Unit.</th>
          <th class="num">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td>{{.Name}}</td>
          <td>{{.Description}}</td>
          <td class="num">{{.Quantity}}</td>
          <td class="num">{{formatMoney .UnitPrice}}</td>
          <td class="num">{{formatMoney .Total}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <span>Total</span>
      <strong>{{formatMoney .Total}}</strong>
    </div>

    {{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
  </div>
</body>
</html>
`

type HTMLRenderer struct {
	tpl *template.Template
}

var _ Renderer = (*HTMLRenderer)(nil)

func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"formatMoney":   formatMoney,
		"templateColor": templateColor,
		"templateFont":  templateFont,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("budget").Funcs(funcs).Parse(budgetHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input PreviewInput) (string, error) {
	if !input.Template.IsValid() {
		input.Template = entities.TemplateModern
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatMoney(amount money.Cents) string {
	return "R$ " + amount.String()
}

func templateColor(t entities.BudgetTemplate) template.CSS {
	switch t {
	case entities.TemplateClassic:
		return "#1f2937"
	case entities.TemplateMinimal:
		return "#6b7280"
	default:
		return "#2563eb"
	}
}

func templateFont(t entities.BudgetTemplate) template.CSS {
	switch t {
	case entities.TemplateClassic:
		return `"Georgia", serif`
	case entities.TemplateMinimal:
		return `"Helvetica Neue"`
	default:
		return `"Inter"`
	}
}
