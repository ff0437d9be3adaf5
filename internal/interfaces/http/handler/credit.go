package handler

import (
	creditapp "github.com/emtienda/backend/internal/application/credit"
	"github.com/gin-gonic/gin"
)

// CreditHandler handles the pending-credit ledger endpoints
type CreditHandler struct {
	BaseHandler
	creditService *creditapp.CreditService
}

// NewCreditHandler creates a new CreditHandler
func NewCreditHandler(creditService *creditapp.CreditService) *CreditHandler {
	return &CreditHandler{creditService: creditService}
}

// RegisterRoutes registers credit ledger routes
func (h *CreditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	credits := rg.Group("/credits")
	{
		credits.GET("", h.Pending)
		credits.POST("/:id/paid", h.MarkPaid)
	}
}

// Pending lists outstanding credit sales, oldest debt first. ?client=
// filters by client name substring.
func (h *CreditHandler) Pending(c *gin.Context) {
	list, err := h.creditService.Pending(c.Request.Context(), c.Query("client"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, list)
}

// MarkPaid settles a credit sale. The transition is one-way.
func (h *CreditHandler) MarkPaid(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.creditService.MarkPaid(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
