package printing

// Built-in report templates. Layout is intentionally plain: the store
// prints these on a home printer or shares them over WhatsApp.

const baseStyle = `
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #222; }
  h1 { font-size: 18px; margin-bottom: 2px; }
  .meta { color: #777; margin-bottom: 14px; }
  table { width: 100%; border-collapse: collapse; }
  th { background: #7C3AED; color: #fff; text-align: left; padding: 6px; }
  td { border-bottom: 1px solid #ddd; padding: 6px; }
  tr:nth-child(even) td { background: #FAF5FF; }
  .totals { margin-top: 14px; font-size: 14px; font-weight: bold; }
  .right { text-align: right; }
</style>
`

// SalesReportTemplate renders a daily or monthly sales report.
// Expects report.SalesReport.
const SalesReportTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8">` + baseStyle + `</head>
<body>
  <h1>EM Tienda — Reporte de Ventas ({{if eq .Period "daily"}}Diario{{else}}Mensual{{end}})</h1>
  <div class="meta">Generado: {{formatDateTime .GeneratedAt}} — Tasa: {{formatBs .ExchangeRate}}</div>
  <table>
    <tr><th>Fecha</th><th>Artículos</th><th>Método de Pago</th><th class="right">Total $</th><th class="right">Total Bs</th></tr>
    {{range .Rows}}
    <tr>
      <td>{{formatDateTime .Date}}</td>
      <td>{{.ItemsSummary}}</td>
      <td>{{.PaymentMethod}}{{if .ClientName}} ({{.ClientName}}){{end}}</td>
      <td class="right">{{formatUSD .TotalUSD}}</td>
      <td class="right">{{formatBs .TotalBs}}</td>
    </tr>
    {{end}}
  </table>
  <div class="totals">
    Total del período: {{formatUSD .TotalUSD}} &nbsp;/&nbsp; {{formatBs .TotalBs}}
  </div>
</body>
</html>`

// InventoryReportTemplate renders the valorized inventory.
// Expects report.InventoryReport.
const InventoryReportTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8">` + baseStyle + `</head>
<body>
  <h1>EM Tienda — Inventario Valorizado</h1>
  <div class="meta">Generado: {{formatDateTime .GeneratedAt}} — Tasa: {{formatBs .ExchangeRate}}</div>
  <table>
    <tr><th>Producto</th><th>Categoría</th><th class="right">Stock</th><th class="right">Precio $</th><th class="right">Valor $</th></tr>
    {{range .Rows}}
    <tr>
      <td>{{.Name}}{{if .Size}} ({{.Size}}){{end}}</td>
      <td>{{.Category}}{{if .Subcategory}} / {{.Subcategory}}{{end}}</td>
      <td class="right">{{.Stock}}</td>
      <td class="right">{{formatUSD .UnitPriceUSD}}</td>
      <td class="right">{{formatUSD .ValueUSD}}</td>
    </tr>
    {{end}}
  </table>
  <div class="totals">
    Valor total del inventario: {{formatUSD .TotalValueUSD}} &nbsp;/&nbsp; {{formatBs .TotalValueBs}}
  </div>
</body>
</html>`

// CreditReportTemplate renders the pending credits report.
// Expects report.CreditReport.
const CreditReportTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8">` + baseStyle + `</head>
<body>
  <h1>EM Tienda — Créditos Pendientes</h1>
  <div class="meta">Generado: {{formatDateTime .GeneratedAt}}</div>
  <table>
    <tr><th>Cliente</th><th>Fecha</th><th>Artículos</th><th class="right">Monto $</th><th class="right">Monto Bs</th></tr>
    {{range .Rows}}
    <tr>
      <td>{{.ClientName}}</td>
      <td>{{formatDate .CreditDate}}</td>
      <td>{{.ItemsSummary}}</td>
      <td class="right">{{formatUSD .TotalUSD}}</td>
      <td class="right">{{formatBs .TotalBs}}</td>
    </tr>
    {{end}}
  </table>
  <div class="totals">
    Total por cobrar: {{formatUSD .TotalUSD}}
  </div>
</body>
</html>`
