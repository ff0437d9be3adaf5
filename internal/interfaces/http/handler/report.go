package handler

import (
	"net/http"
	"time"

	reportapp "github.com/emtienda/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles report endpoints, both JSON projections and PDF
// downloads
type ReportHandler struct {
	BaseHandler
	reportService   *reportapp.ReportService
	documentService *reportapp.DocumentService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService, documentService *reportapp.DocumentService) *ReportHandler {
	return &ReportHandler{
		reportService:   reportService,
		documentService: documentService,
	}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/daily", h.DailySales)
		reports.GET("/daily/pdf", h.DailySalesPDF)
		reports.GET("/monthly", h.MonthlySales)
		reports.GET("/monthly/pdf", h.MonthlySalesPDF)
		reports.GET("/inventory", h.Inventory)
		reports.GET("/inventory/pdf", h.InventoryPDF)
		reports.GET("/credits", h.Credits)
		reports.GET("/credits/pdf", h.CreditsPDF)
	}
}

// DailySales returns today's sales report rows
func (h *ReportHandler) DailySales(c *gin.Context) {
	report, err := h.reportService.DailySales(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, report)
}

// MonthlySales returns the current month's sales report rows
func (h *ReportHandler) MonthlySales(c *gin.Context) {
	report, err := h.reportService.MonthlySales(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, report)
}

// Inventory returns the valorized inventory rows
func (h *ReportHandler) Inventory(c *gin.Context) {
	report, err := h.reportService.InventoryValuation(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, report)
}

// Credits returns the pending-credit report rows
func (h *ReportHandler) Credits(c *gin.Context) {
	report, err := h.reportService.PendingCredits(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, report)
}

// DailySalesPDF downloads today's sales report as PDF
func (h *ReportHandler) DailySalesPDF(c *gin.Context) {
	doc, err := h.documentService.DailySalesPDF(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	servePDF(c, doc)
}

// MonthlySalesPDF downloads the current month's sales report as PDF
func (h *ReportHandler) MonthlySalesPDF(c *gin.Context) {
	doc, err := h.documentService.MonthlySalesPDF(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	servePDF(c, doc)
}

// InventoryPDF downloads the valorized inventory as PDF
func (h *ReportHandler) InventoryPDF(c *gin.Context) {
	doc, err := h.documentService.InventoryPDF(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	servePDF(c, doc)
}

// CreditsPDF downloads the pending-credit report as PDF
func (h *ReportHandler) CreditsPDF(c *gin.Context) {
	doc, err := h.documentService.CreditsPDF(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	servePDF(c, doc)
}

func servePDF(c *gin.Context, doc *reportapp.Document) {
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc.PDFData)
}
