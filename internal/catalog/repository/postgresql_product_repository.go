// Package repository implements data persistence for the product catalog.
// Repositories support both PostgreSQL and MySQL with transaction support via database.GetTx().
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
	"github.com/allisson/catalog/internal/database"
	apperrors "github.com/allisson/catalog/internal/errors"
)

// PostgreSQLProductRepository implements Product persistence for PostgreSQL databases.
type PostgreSQLProductRepository struct {
	db *sql.DB
}

// Create inserts a new product.
func (p *PostgreSQLProductRepository) Create(ctx context.Context, product *catalogDomain.Product) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO products (id, name, description, price, stock, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// Get retrieves a product by id.
func (p *PostgreSQLProductRepository) Get(ctx context.Context, id uuid.UUID) (*catalogDomain.Product, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, price, stock, created_at
			  FROM products
			  WHERE id = $1`

	var product catalogDomain.Product
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogDomain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product")
	}

	return &product, nil
}

// List returns products newest first, paginated by offset and limit.
func (p *PostgreSQLProductRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*catalogDomain.Product, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, price, stock, created_at
			  FROM products
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer func() {
		_ = rows.Close()
	}()

	products := make([]*catalogDomain.Product, 0)
	for rows.Next() {
		var product catalogDomain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
			&product.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}

	return products, nil
}

// Update overwrites name, description, price and stock.
func (p *PostgreSQLProductRepository) Update(ctx context.Context, product *catalogDomain.Product) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE products
			  SET name = $1, description = $2, price = $3, stock = $4
			  WHERE id = $5`

	_, err := querier.ExecContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update product")
	}
	return nil
}

// Delete removes a product by id.
func (p *PostgreSQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}

	return checkDeleted(result)
}

// checkDeleted maps a zero row count to ErrProductNotFound.
func checkDeleted(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return catalogDomain.ErrProductNotFound
	}
	return nil
}

// NewPostgreSQLProductRepository creates a new PostgreSQL Product repository instance.
func NewPostgreSQLProductRepository(db *sql.DB) *PostgreSQLProductRepository {
	return &PostgreSQLProductRepository{db: db}
}
