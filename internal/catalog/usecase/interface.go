// Package usecase defines business logic interfaces for catalog operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
)

// ProductRepository defines persistence operations for products.
// Implementations must support transaction-aware operations via context propagation.
type ProductRepository interface {
	// Create stores a new product.
	Create(ctx context.Context, product *catalogDomain.Product) error

	// Get retrieves a product by id. Returns ErrProductNotFound if not found.
	Get(ctx context.Context, id uuid.UUID) (*catalogDomain.Product, error)

	// List returns products ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int) ([]*catalogDomain.Product, error)

	// Update overwrites the mutable fields of an existing product.
	Update(ctx context.Context, product *catalogDomain.Product) error

	// Delete removes a product. Returns ErrProductNotFound if no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductUseCase defines catalog CRUD with input sanitization.
type ProductUseCase interface {
	// Create sanitizes the input and stores a new product.
	Create(ctx context.Context, input *catalogDomain.ProductInput) (*catalogDomain.Product, error)

	// Get retrieves a product. Returns ErrProductNotFound if not found.
	Get(ctx context.Context, id uuid.UUID) (*catalogDomain.Product, error)

	// List returns a page of products.
	List(ctx context.Context, offset, limit int) ([]*catalogDomain.Product, error)

	// Update sanitizes the input and replaces the product's fields.
	// Returns ErrProductNotFound if not found.
	Update(ctx context.Context, id uuid.UUID, input *catalogDomain.ProductInput) (*catalogDomain.Product, error)

	// Delete removes a product. Returns ErrProductNotFound if not found.
	Delete(ctx context.Context, id uuid.UUID) error
}
