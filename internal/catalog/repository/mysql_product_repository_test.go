package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
)

func mustBinary(t *testing.T, id uuid.UUID) []byte {
	t.Helper()
	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestNewMySQLProductRepository(t *testing.T) {
	db, _ := newMockDB(t)

	repo := NewMySQLProductRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &MySQLProductRepository{}, repo)
}

func TestMySQLProductRepository_Create(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewMySQLProductRepository(db)
	product := newTestProduct()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO products (id, name, description, price, stock, created_at)`)).
		WithArgs(
			mustBinary(t, product.ID),
			product.Name,
			product.Description,
			product.Price,
			product.Stock,
			product.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(ctx, product))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLProductRepository_Get(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, name, description, price, stock, created_at`)

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLProductRepository(db)
		expected := newTestProduct()
		idBytes := mustBinary(t, expected.ID)

		mock.ExpectQuery(query).
			WithArgs(idBytes).
			WillReturnRows(sqlmock.NewRows(productColumns).AddRow(
				idBytes,
				expected.Name,
				expected.Description,
				expected.Price,
				expected.Stock,
				expected.CreatedAt,
			))

		product, err := repo.Get(ctx, expected.ID)
		require.NoError(t, err)
		assert.Equal(t, expected, product)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLProductRepository(db)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(query).WithArgs(mustBinary(t, id)).WillReturnRows(sqlmock.NewRows(productColumns))

		product, err := repo.Get(ctx, id)
		assert.Nil(t, product)
		assert.ErrorIs(t, err, catalogDomain.ErrProductNotFound)
	})

	t.Run("Error_CorruptID", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLProductRepository(db)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(query).
			WithArgs(mustBinary(t, id)).
			WillReturnRows(sqlmock.NewRows(productColumns).AddRow([]byte{1, 2, 3}, "n", "", 1.0, 1, newTestProduct().CreatedAt))

		product, err := repo.Get(ctx, id)
		assert.Nil(t, product)
		assert.ErrorContains(t, err, "failed to unmarshal product id")
	})
}

func TestMySQLProductRepository_List(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewMySQLProductRepository(db)
	product := newTestProduct()

	mock.ExpectQuery(regexp.QuoteMeta(`LIMIT ? OFFSET ?`)).
		WithArgs(20, 40).
		WillReturnRows(sqlmock.NewRows(productColumns).AddRow(
			mustBinary(t, product.ID),
			product.Name,
			product.Description,
			product.Price,
			product.Stock,
			product.CreatedAt,
		))

	products, err := repo.List(ctx, 40, 20)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product, products[0])
}

func TestMySQLProductRepository_Update(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewMySQLProductRepository(db)
	product := newTestProduct()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE products`)).
		WithArgs(product.Name, product.Description, product.Price, product.Stock, mustBinary(t, product.ID)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Update(ctx, product), "unchanged rows are not an error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLProductRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLProductRepository(db)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE id = ?`)).
			WithArgs(mustBinary(t, id)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, id))
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLProductRepository(db)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE id = ?`)).
			WithArgs(mustBinary(t, id)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, id), catalogDomain.ErrProductNotFound)
	})
}
