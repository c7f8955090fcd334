// Package domain defines the core domain models and errors for the product catalog.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stored field limits, enforced after sanitization.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 1000
)

// Product is a catalog entry.
type Product struct {
	// ID is the unique identifier (UUIDv7).
	ID uuid.UUID
	// Name is the sanitized display name.
	Name string
	// Description is optional sanitized free text; empty when absent.
	Description string
	// Price is a positive amount with two decimal places of storage precision.
	Price float64
	// Stock is the non-negative quantity on hand.
	Stock int
	// CreatedAt is the UTC timestamp when the product was first stored.
	CreatedAt time.Time
}

// ProductInput carries the client-supplied fields for create and update.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}
