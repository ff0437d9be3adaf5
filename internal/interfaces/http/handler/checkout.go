package handler

import (
	checkoutapp "github.com/emtienda/backend/internal/application/checkout"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutHandler handles cart and sale API endpoints
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkoutapp.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkoutapp.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// RegisterRoutes registers cart and sale routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.ViewCart)
		cart.POST("/items", h.AddItem)
		cart.POST("/scan", h.Scan)
		cart.DELETE("/items/:id", h.RemoveItem)
	}
	rg.POST("/checkout", h.Commit)

	salesGroup := rg.Group("/sales")
	{
		salesGroup.GET("", h.ListSales)
		salesGroup.DELETE("/:id", h.Reverse)
	}
}

// AddItemRequest identifies the product to add to the cart
type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
}

// ScanRequest carries a scanned barcode
type ScanRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

// ViewCart returns the session cart with totals in both currencies
func (h *CheckoutHandler) ViewCart(c *gin.Context) {
	cart, err := h.checkoutService.ViewCart(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cart)
}

// AddItem puts one unit of a product into the cart. Adds past live
// stock are silent no-ops; the returned cart reflects what happened.
func (h *CheckoutHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	id, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.checkoutService.AddToCart(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cart)
}

// Scan resolves a barcode and adds the product to the cart. Unknown
// codes return NOT_FOUND so the frontend can fall back to search mode.
func (h *CheckoutHandler) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.checkoutService.AddScanned(c.Request.Context(), req.Barcode)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cart)
}

// RemoveItem drops the whole line for a product
func (h *CheckoutHandler) RemoveItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.checkoutService.RemoveFromCart(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cart)
}

// Commit turns the cart into a sale. Stock decrements and the sale
// insert are atomic; the live exchange rate is frozen into the record.
func (h *CheckoutHandler) Commit(c *gin.Context) {
	var req checkoutapp.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.checkoutService.Commit(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, sale)
}

// ListSales returns the sale history, newest first
func (h *CheckoutHandler) ListSales(c *gin.Context) {
	list, err := h.checkoutService.ListSales(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, list)
}

// Reverse cancels a sale, restoring stock for products that still exist
func (h *CheckoutHandler) Reverse(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.checkoutService.Reverse(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
