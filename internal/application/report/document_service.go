package report

import (
	"context"
	"fmt"
	"time"

	"github.com/emtienda/backend/internal/infrastructure/printing"
)

// Document is a rendered report ready for download
type Document struct {
	Filename string
	PDFData  []byte
}

// DocumentService turns report projections into downloadable PDF
// documents. The projection produces the rows; the exact page layout
// lives in the templates and is not load-bearing.
type DocumentService struct {
	reports  *ReportService
	engine   *printing.TemplateEngine
	renderer printing.PDFRenderer
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(reports *ReportService, engine *printing.TemplateEngine, renderer printing.PDFRenderer) *DocumentService {
	return &DocumentService{
		reports:  reports,
		engine:   engine,
		renderer: renderer,
	}
}

// DailySalesPDF renders today's sales report
func (s *DocumentService) DailySalesPDF(ctx context.Context, now time.Time) (*Document, error) {
	data, err := s.reports.DailySales(ctx, now)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("reporte_diario_%s.pdf", now.Format("2006-01-02"))
	return s.render(ctx, "sales_report", printing.SalesReportTemplate, data, name)
}

// MonthlySalesPDF renders the current month's sales report
func (s *DocumentService) MonthlySalesPDF(ctx context.Context, now time.Time) (*Document, error) {
	data, err := s.reports.MonthlySales(ctx, now)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("reporte_mensual_%s.pdf", now.Format("2006-01"))
	return s.render(ctx, "sales_report", printing.SalesReportTemplate, data, name)
}

// InventoryPDF renders the valorized inventory report
func (s *DocumentService) InventoryPDF(ctx context.Context) (*Document, error) {
	data, err := s.reports.InventoryValuation(ctx)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("inventario_%s.pdf", time.Now().Format("2006-01-02"))
	return s.render(ctx, "inventory_report", printing.InventoryReportTemplate, data, name)
}

// CreditsPDF renders the pending credits report
func (s *DocumentService) CreditsPDF(ctx context.Context) (*Document, error) {
	data, err := s.reports.PendingCredits(ctx)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("creditos_pendientes_%s.pdf", time.Now().Format("2006-01-02"))
	return s.render(ctx, "credit_report", printing.CreditReportTemplate, data, name)
}

func (s *DocumentService) render(ctx context.Context, templateName, source string, data any, filename string) (*Document, error) {
	html, err := s.engine.Render(templateName, source, data)
	if err != nil {
		return nil, err
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  html,
		Title: filename,
	})
	if err != nil {
		return nil, err
	}

	return &Document{
		Filename: filename,
		PDFData:  result.PDFData,
	}, nil
}
