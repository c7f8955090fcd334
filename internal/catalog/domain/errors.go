package domain

import (
	"github.com/google/uuid"

	"github.com/allisson/catalog/internal/errors"
)

// Catalog error definitions.
var (
	// ErrProductNotFound indicates no product exists with the requested id.
	ErrProductNotFound = errors.Wrap(errors.ErrNotFound, "product not found")

	// ErrInvalidProductID indicates a path id that is not a UUID.
	ErrInvalidProductID = errors.NewDetailed(errors.ErrInvalidInput, "Invalid product id")
)

// NewProductNotFoundError returns ErrProductNotFound carrying the client message for id.
func NewProductNotFoundError(id uuid.UUID) error {
	return errors.NewDetailedf(ErrProductNotFound, "Product not found with id: %s", id)
}
