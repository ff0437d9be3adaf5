package handler

import (
	settingsapp "github.com/emtienda/backend/internal/application/settings"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SettingsHandler handles the exchange rate endpoints
type SettingsHandler struct {
	BaseHandler
	rateService *settingsapp.RateService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(rateService *settingsapp.RateService) *SettingsHandler {
	return &SettingsHandler{rateService: rateService}
}

// RegisterRoutes registers settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("/exchange-rate", h.GetRate)
		settings.PUT("/exchange-rate", h.SetRate)
	}
}

// SetRateRequest carries the new Bs/USD rate
type SetRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// GetRate returns the current Bs/USD exchange rate
func (h *SettingsHandler) GetRate(c *gin.Context) {
	rate, err := h.rateService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rate)
}

// SetRate stores a new exchange rate. Only future sales pick it up;
// committed sales keep their frozen rate.
func (h *SettingsHandler) SetRate(c *gin.Context) {
	var req SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rate, err := h.rateService.Set(c.Request.Context(), req.Rate)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rate)
}
