package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "watchlist.db")
}

func countCurrencies(t *testing.T, ctx context.Context, path string) int {
	t.Helper()
	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.GetContext(ctx, &n, "SELECT COUNT(*) FROM currencies"))
	return n
}

func TestDSN(t *testing.T) {
	dsn := DSN("/tmp/w.db")
	assert.Equal(t,
		"/tmp/w.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(FULL)&_pragma=foreign_keys(1)",
		dsn,
	)
}

func TestOpenAndMigrate(t *testing.T) {
	ctx := context.Background()
	path := tempPath(t)

	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db, false, zap.NewNop().Sugar()))

	_, err = db.ExecContext(ctx, "INSERT INTO currencies (code, name) VALUES ('USD', 'Dollar')")
	require.NoError(t, err)

	// second run is a no-op
	require.NoError(t, Migrate(ctx, db, false, zap.NewNop().Sugar()))

	var n int
	require.NoError(t, db.GetContext(ctx, &n, "SELECT COUNT(*) FROM currencies"))
	assert.Equal(t, 1, n)
}

func TestMigrate_Reset(t *testing.T) {
	ctx := context.Background()
	path := tempPath(t)

	db, err := Open(ctx, path)
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db, false, zap.NewNop().Sugar()))
	_, err = db.ExecContext(ctx, "INSERT INTO currencies (code, name) VALUES ('EUR', 'Euro')")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	assert.Equal(t, 1, countCurrencies(t, ctx, path))

	db, err = Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db, true, zap.NewNop().Sugar()))
	require.NoError(t, db.Close())

	assert.Equal(t, 0, countCurrencies(t, ctx, path))
}

func TestSchemaConstraints(t *testing.T) {
	ctx := context.Background()
	path := tempPath(t)

	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(ctx, db, false, zap.NewNop().Sugar()))

	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"valid row", "INSERT INTO currencies (code, name) VALUES ('GBP', 'Pound')", false},
		{"duplicate code", "INSERT INTO currencies (code, name) VALUES ('GBP', 'Pound')", true},
		{"short code", "INSERT INTO currencies (code, name) VALUES ('GB', 'Pound')", true},
		{"rate without timestamp", "INSERT INTO currencies (code, name, rate) VALUES ('CAD', 'Dollar', 1.5)", true},
		{"non-positive rate", "INSERT INTO currencies (code, name, rate, updated_at) VALUES ('CHF', 'Franc', 0, '2025-01-01T00:00:00Z')", true},
		{"rate with timestamp", "INSERT INTO currencies (code, name, rate, updated_at) VALUES ('JPY', 'Yen', 0.5, '2025-01-01T00:00:00Z')", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.ExecContext(ctx, tt.query)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
