package handler

import (
	catalogapp "github.com/emtienda/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles catalog API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers catalog routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/grouped", h.Grouped)
		products.GET("/barcode/:code", h.LookupBarcode)
		products.GET("/:id", h.Get)
		products.POST("", h.Create)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
	rg.GET("/categories", h.Categories)
}

// List searches the catalog. ?search= filters by name, category or
// barcode; empty returns everything ordered by name.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, products)
}

// Grouped returns the searched catalog partitioned by category
func (h *ProductHandler) Grouped(c *gin.Context) {
	groups, err := h.productService.Grouped(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, groups)
}

// Get returns a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// LookupBarcode resolves a barcode to a product. Duplicates are allowed;
// the first match wins.
func (h *ProductHandler) LookupBarcode(c *gin.Context) {
	product, err := h.productService.LookupBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// Create adds a product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, product)
}

// Update replaces a product's editable fields
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a product. Historical sales keep their frozen item
// snapshots.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Categories lists every category with subcategories and variant rules,
// for form rendering
func (h *ProductHandler) Categories(c *gin.Context) {
	h.Success(c, h.productService.Categories())
}
