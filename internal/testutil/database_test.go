package testutil

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSNFromEnvironment(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		get    func() string
		want   string
	}{
		{"postgres default", "TEST_POSTGRES_DSN", "", GetPostgresTestDSN, defaultPostgresTestDSN},
		{"postgres override", "TEST_POSTGRES_DSN", "postgres://custom", GetPostgresTestDSN, "postgres://custom"},
		{"mysql default", "TEST_MYSQL_DSN", "", GetMySQLTestDSN, defaultMySQLTestDSN},
		{"mysql override", "TEST_MYSQL_DSN", "custom@tcp(db)/x", GetMySQLTestDSN, "custom@tcp(db)/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)
			assert.Equal(t, tt.want, tt.get())
		})
	}
}

func TestGetMigrationsPath(t *testing.T) {
	for _, dbType := range []string{"postgresql", "mysql"} {
		t.Run(dbType, func(t *testing.T) {
			got, err := getMigrationsPath(dbType)
			require.NoError(t, err)
			assert.Equal(t, dbType, filepath.Base(got))

			ups, err := filepath.Glob(filepath.Join(got, "*.up.sql"))
			require.NoError(t, err)
			downs, err := filepath.Glob(filepath.Join(got, "*.down.sql"))
			require.NoError(t, err)
			assert.Len(t, ups, 2, "users and products")
			assert.Len(t, downs, len(ups), "every up migration has a down")
		})
	}

	t.Run("unknown type", func(t *testing.T) {
		got, err := getMigrationsPath("sqlite")
		assert.Error(t, err)
		assert.Empty(t, got)
	})

	t.Run("outside the module", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := getMigrationsPath("postgresql")
		assert.Error(t, err, "temp dirs live outside the module")
	})
}

func TestUUIDToDriverValue(t *testing.T) {
	id := uuid.Must(uuid.NewV7())

	value, err := uuidToDriverValue(id, "postgres")
	require.NoError(t, err)
	assert.Equal(t, id, value)

	for _, driver := range []string{"mysql", "unknown"} {
		value, err := uuidToDriverValue(id, driver)
		require.NoError(t, err)

		raw, ok := value.([]byte)
		require.True(t, ok, driver)
		assert.Equal(t, id[:], raw)
	}
}

func TestGetTestDSN(t *testing.T) {
	t.Setenv("TEST_POSTGRES_DSN", "postgres://pg")
	t.Setenv("TEST_MYSQL_DSN", "mysql-dsn")

	assert.Equal(t, "postgres://pg", GetTestDSN("postgres"))
	assert.Equal(t, "mysql-dsn", GetTestDSN("mysql"))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, []string{"$1", "$2", "$3"}, placeholders("postgres", 3))
	assert.Equal(t, []string{"?", "?"}, placeholders("mysql", 2))
}

func TestTeardownDBWithNilDB(t *testing.T) {
	assert.NotPanics(t, func() {
		TeardownDB(t, nil)
	})
}

func TestSetupDBAndFixtures(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql"} {
		t.Run(driver, func(t *testing.T) {
			db := SetupDB(t, driver)
			defer TeardownDB(t, db)

			userID := CreateTestUser(t, db, driver, "fixture@demo.com", "USER")
			assert.NotEqual(t, uuid.Nil, userID)

			productID := CreateTestProduct(t, db, driver, "Fixture")
			assert.NotEqual(t, uuid.Nil, productID)

			var count int
			require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
			assert.Equal(t, 1, count)
			require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count))
			assert.Equal(t, 1, count)

			if driver == "mysql" {
				CleanupMySQLDB(t, db)
			} else {
				CleanupPostgresDB(t, db)
			}

			require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
			assert.Equal(t, 0, count, "cleanup should remove all data")
		})
	}
}
