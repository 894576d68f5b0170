package postgres

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL(t *testing.T) {
	cases := map[string]string{
		"postgres://app:pw@db:5432/cuentas?sslmode=disable":   "pgx5://app:pw@db:5432/cuentas?sslmode=disable",
		"postgresql://app:pw@db:5432/cuentas?sslmode=require": "pgx5://app:pw@db:5432/cuentas?sslmode=require",
		"pgx5://ya/convertido":                                "pgx5://ya/convertido",
	}
	for in, want := range cases {
		assert.Equal(t, want, migrateURL(in), in)
	}
}

func TestMigraciones_Embebidas(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"migrations/000001_init.up.sql",
		"migrations/000001_init.down.sql",
	}, files)

	up, err := fs.ReadFile(migrationsFS, "migrations/000001_init.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "ON DELETE CASCADE")
}

func TestClasificacionDeErrores(t *testing.T) {
	fk := fmt.Errorf("insertar cuenta: %w", &pgconn.PgError{Code: "23503"})
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isCheckViolation(fk))
	assert.True(t, isCheckViolation(check))
	assert.True(t, isNumericOutOfRange(&pgconn.PgError{Code: "22003"}))
	assert.False(t, isNumericOutOfRange(check))
	assert.False(t, isForeignKeyViolation(fmt.Errorf("otro")))
}
