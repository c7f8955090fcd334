// Package http provides HTTP handlers for product catalog operations.
// Role checks happen in the authorization middleware before these handlers run.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
	"github.com/allisson/catalog/internal/catalog/http/dto"
	catalogUseCase "github.com/allisson/catalog/internal/catalog/usecase"
	"github.com/allisson/catalog/internal/httputil"
	customValidation "github.com/allisson/catalog/internal/validation"
)

// ProductHandler handles HTTP requests for product CRUD.
type ProductHandler struct {
	productUseCase catalogUseCase.ProductUseCase
	logger         *slog.Logger
}

// NewProductHandler creates a new product handler with required dependencies.
func NewProductHandler(productUseCase catalogUseCase.ProductUseCase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		logger:         logger,
	}
}

// bindProduct decodes and validates the request body, writing the error response on failure.
func (h *ProductHandler) bindProduct(c *gin.Context) (*dto.ProductRequest, bool) {
	var req dto.ProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return nil, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}

	return &req, true
}

// productID parses the :id path parameter, writing a 400 response on failure.
func (h *ProductHandler) productID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, catalogDomain.ErrInvalidProductID, h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// CreateHandler adds a product.
// POST /catalog - Requires ADMIN.
// Returns 201 Created with the stored product.
func (h *ProductHandler) CreateHandler(c *gin.Context) {
	req, ok := h.bindProduct(c)
	if !ok {
		return
	}

	product, err := h.productUseCase.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapProductToResponse(product))
}

// GetHandler retrieves a product.
// GET /catalog/:id - Requires ADMIN or USER.
// Returns 200 OK with the product, or 404.
func (h *ProductHandler) GetHandler(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	product, err := h.productUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToResponse(product))
}

// ListHandler lists products with pagination.
// GET /catalog?offset=0&limit=50 - Requires ADMIN or USER.
// Returns 200 OK with {"data": [...]}.
func (h *ProductHandler) ListHandler(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	products, err := h.productUseCase.List(c.Request.Context(), page.Offset, page.Limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductsToListResponse(products))
}

// UpdateHandler replaces a product's fields.
// PUT /catalog/:id - Requires ADMIN.
// Returns 200 OK with the updated product, or 404.
func (h *ProductHandler) UpdateHandler(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	req, ok := h.bindProduct(c)
	if !ok {
		return
	}

	product, err := h.productUseCase.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToResponse(product))
}

// DeleteHandler removes a product.
// DELETE /catalog/:id - Requires ADMIN.
// Returns 204 No Content, or 404.
func (h *ProductHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	if err := h.productUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
