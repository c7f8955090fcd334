// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
	customValidation "github.com/allisson/catalog/internal/validation"
)

// Request field limits. The stored limits are tighter and applied after sanitization.
const (
	MaxRequestNameLength        = 255
	MaxRequestDescriptionLength = 2000
)

// ProductRequest is the body of create and update calls.
// Price and Stock are pointers so that an absent value is reported as missing
// rather than read as zero.
type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

// Validate checks if the product request is valid.
func (r *ProductRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, MaxRequestNameLength),
		),
		validation.Field(&r.Description,
			validation.RuneLength(0, MaxRequestDescriptionLength),
		),
		validation.Field(&r.Price,
			validation.NotNil,
			validation.By(positivePrice),
		),
		validation.Field(&r.Stock,
			validation.NotNil,
			validation.Min(0).Error("must be no less than 0"),
		),
	)
}

// ToDomain converts the request into use case input. Call Validate first.
func (r *ProductRequest) ToDomain() *catalogDomain.ProductInput {
	input := &catalogDomain.ProductInput{
		Name:        r.Name,
		Description: r.Description,
	}
	if r.Price != nil {
		input.Price = *r.Price
	}
	if r.Stock != nil {
		input.Stock = *r.Stock
	}
	return input
}

// positivePrice rejects zero and negative prices. Min would skip zero as an empty value.
func positivePrice(value any) error {
	price, _ := value.(*float64)
	if price != nil && *price <= 0 {
		return validation.NewError("validation_price_positive", "must be greater than 0")
	}
	return nil
}
