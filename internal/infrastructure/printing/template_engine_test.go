package printing

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateEngine_Render(t *testing.T) {
	engine := NewTemplateEngine()

	t.Run("renders data with formatting functions", func(t *testing.T) {
		out, err := engine.Render("test", `{{formatUSD .Amount}} / {{formatBs .AmountBs}}`, map[string]any{
			"Amount":   decimal.RequireFromString("12.5"),
			"AmountBs": decimal.RequireFromString("562.50"),
		})
		require.NoError(t, err)
		assert.Equal(t, "$12.50 / Bs. 562.50", out)
	})

	t.Run("formats dates day first", func(t *testing.T) {
		date := time.Date(2026, 8, 20, 15, 4, 0, 0, time.Local)
		out, err := engine.Render("test", `{{formatDate .D}} {{formatDateTime .D}}`, map[string]any{"D": date})
		require.NoError(t, err)
		assert.Equal(t, "20/08/2026 20/08/2026 15:04", out)
	})

	t.Run("title cases Spanish text", func(t *testing.T) {
		out, err := engine.Render("test", `{{title .S}}`, map[string]any{"S": "créditos pendientes"})
		require.NoError(t, err)
		assert.Equal(t, "Créditos Pendientes", out)
	})

	t.Run("rejects malformed template source", func(t *testing.T) {
		_, err := engine.Render("bad", `{{range`, nil)
		assert.Error(t, err)
	})
}

func TestBuiltinTemplates_Parse(t *testing.T) {
	engine := NewTemplateEngine()

	t.Run("sales report", func(t *testing.T) {
		data := map[string]any{
			"Period":       "daily",
			"GeneratedAt":  time.Now(),
			"ExchangeRate": decimal.RequireFromString("50.00"),
			"TotalUSD":     decimal.RequireFromString("25.00"),
			"TotalBs":      decimal.RequireFromString("1250.00"),
			"Rows": []map[string]any{{
				"Date":          time.Now(),
				"ItemsSummary":  "2 Blusa",
				"PaymentMethod": "Punto de Venta",
				"ClientName":    "",
				"TotalUSD":      decimal.RequireFromString("25.00"),
				"TotalBs":       decimal.RequireFromString("1250.00"),
			}},
		}
		out, err := engine.Render("sales", SalesReportTemplate, data)
		require.NoError(t, err)
		assert.Contains(t, out, "Reporte de Ventas (Diario)")
		assert.Contains(t, out, "2 Blusa")
		assert.Contains(t, out, "$25.00")
	})

	t.Run("inventory report", func(t *testing.T) {
		data := map[string]any{
			"GeneratedAt":   time.Now(),
			"ExchangeRate":  decimal.RequireFromString("50.00"),
			"TotalValueUSD": decimal.RequireFromString("30.00"),
			"TotalValueBs":  decimal.RequireFromString("1500.00"),
			"Rows": []map[string]any{{
				"Name":         "Blusa",
				"Category":     "Ropa",
				"Subcategory":  "Dama",
				"Size":         "M",
				"Stock":        3,
				"UnitPriceUSD": decimal.RequireFromString("10.00"),
				"ValueUSD":     decimal.RequireFromString("30.00"),
			}},
		}
		out, err := engine.Render("inventory", InventoryReportTemplate, data)
		require.NoError(t, err)
		assert.Contains(t, out, "Inventario Valorizado")
		assert.Contains(t, out, "Blusa (M)")
		assert.Contains(t, out, "Ropa / Dama")
	})

	t.Run("credit report", func(t *testing.T) {
		data := map[string]any{
			"GeneratedAt": time.Now(),
			"TotalUSD":    decimal.RequireFromString("10.00"),
			"Rows": []map[string]any{{
				"ClientName":   "María Pérez",
				"CreditDate":   time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local),
				"ItemsSummary": "1 Collar",
				"TotalUSD":     decimal.RequireFromString("10.00"),
				"TotalBs":      decimal.RequireFromString("450.00"),
			}},
		}
		out, err := engine.Render("credits", CreditReportTemplate, data)
		require.NoError(t, err)
		assert.Contains(t, out, "Créditos Pendientes")
		assert.Contains(t, out, "María Pérez")
		assert.Contains(t, out, "01/08/2026")
		assert.True(t, strings.Contains(out, "Total por cobrar"))
	})
}
