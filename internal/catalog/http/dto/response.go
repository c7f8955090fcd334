// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
)

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MapProductToResponse converts a domain product to an API response.
func MapProductToResponse(product *catalogDomain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
	}
}

// ListProductsResponse represents a page of products in API responses.
type ListProductsResponse struct {
	Data []ProductResponse `json:"data"`
}

// MapProductsToListResponse converts domain products to a list response.
func MapProductsToListResponse(products []*catalogDomain.Product) ListProductsResponse {
	data := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		data = append(data, MapProductToResponse(product))
	}
	return ListProductsResponse{Data: data}
}
