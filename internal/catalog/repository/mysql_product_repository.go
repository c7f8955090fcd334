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

// MySQLProductRepository implements Product persistence for MySQL databases.
// UUIDs are stored as BINARY(16).
type MySQLProductRepository struct {
	db *sql.DB
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMySQLProduct(scanner rowScanner) (*catalogDomain.Product, error) {
	var product catalogDomain.Product
	var idBytes []byte

	if err := scanner.Scan(
		&idBytes,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := product.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal product id")
	}

	return &product, nil
}

// Create inserts a new product.
func (m *MySQLProductRepository) Create(ctx context.Context, product *catalogDomain.Product) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO products (id, name, description, price, stock, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	id, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLProductRepository) Get(ctx context.Context, id uuid.UUID) (*catalogDomain.Product, error) {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal product id")
	}

	query := `SELECT id, name, description, price, stock, created_at
			  FROM products
			  WHERE id = ?`

	product, err := scanMySQLProduct(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogDomain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// List returns products newest first, paginated by offset and limit.
func (m *MySQLProductRepository) List(ctx context.Context, offset, limit int) ([]*catalogDomain.Product, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, description, price, stock, created_at
			  FROM products
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer func() {
		_ = rows.Close()
	}()

	products := make([]*catalogDomain.Product, 0)
	for rows.Next() {
		product, err := scanMySQLProduct(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}

	return products, nil
}

// Update overwrites name, description, price and stock.
func (m *MySQLProductRepository) Update(ctx context.Context, product *catalogDomain.Product) error {
	querier := database.GetTx(ctx, m.db)

	id, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product id")
	}

	query := `UPDATE products
			  SET name = ?, description = ?, price = ?, stock = ?
			  WHERE id = ?`

	_, err = querier.ExecContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update product")
	}
	return nil
}

// Delete removes a product by id.
func (m *MySQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}

	return checkDeleted(result)
}

// NewMySQLProductRepository creates a new MySQL Product repository instance.
func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}
