// Package usecase implements business logic orchestration for catalog operations.
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
	"github.com/allisson/catalog/internal/database"
	"github.com/allisson/catalog/internal/validation"
)

// productUseCase implements ProductUseCase.
type productUseCase struct {
	txManager   database.TxManager
	productRepo ProductRepository
}

// sanitize applies the stored-field limits to the free-text fields of input.
func sanitize(input *catalogDomain.ProductInput) (name, description string, err error) {
	name, err = validation.Sanitize(input.Name, "Name", catalogDomain.MaxNameLength, true)
	if err != nil {
		return "", "", err
	}

	description, err = validation.Sanitize(
		input.Description,
		"Description",
		catalogDomain.MaxDescriptionLength,
		false,
	)
	if err != nil {
		return "", "", err
	}

	return name, description, nil
}

// Create sanitizes input and stores a new product.
func (p *productUseCase) Create(
	ctx context.Context,
	input *catalogDomain.ProductInput,
) (*catalogDomain.Product, error) {
	name, description, err := sanitize(input)
	if err != nil {
		return nil, err
	}

	product := &catalogDomain.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        name,
		Description: description,
		Price:       input.Price,
		Stock:       input.Stock,
		CreatedAt:   time.Now().UTC(),
	}

	if err := p.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Get retrieves a product by id.
func (p *productUseCase) Get(ctx context.Context, id uuid.UUID) (*catalogDomain.Product, error) {
	product, err := p.productRepo.Get(ctx, id)
	if err != nil {
		return nil, notFoundWithID(err, id)
	}
	return product, nil
}

// List returns a page of products.
func (p *productUseCase) List(ctx context.Context, offset, limit int) ([]*catalogDomain.Product, error) {
	return p.productRepo.List(ctx, offset, limit)
}

// Update loads the product and rewrites its fields in one transaction.
// Sanitization runs before the transaction opens.
func (p *productUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *catalogDomain.ProductInput,
) (*catalogDomain.Product, error) {
	name, description, err := sanitize(input)
	if err != nil {
		return nil, err
	}

	var product *catalogDomain.Product

	err = p.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := p.productRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		existing.Name = name
		existing.Description = description
		existing.Price = input.Price
		existing.Stock = input.Stock

		if err := p.productRepo.Update(ctx, existing); err != nil {
			return err
		}

		product = existing
		return nil
	})
	if err != nil {
		return nil, notFoundWithID(err, id)
	}

	return product, nil
}

// Delete removes a product by id.
func (p *productUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.productRepo.Delete(ctx, id); err != nil {
		return notFoundWithID(err, id)
	}
	return nil
}

// notFoundWithID attaches the product id to not-found errors for the client message.
func notFoundWithID(err error, id uuid.UUID) error {
	if errors.Is(err, catalogDomain.ErrProductNotFound) {
		return catalogDomain.NewProductNotFoundError(id)
	}
	return err
}

// NewProductUseCase creates a new ProductUseCase.
func NewProductUseCase(txManager database.TxManager, productRepo ProductRepository) ProductUseCase {
	return &productUseCase{
		txManager:   txManager,
		productRepo: productRepo,
	}
}
