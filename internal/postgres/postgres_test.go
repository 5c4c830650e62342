package postgres

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{
		"migrations/001_payment_attempts.sql",
		"migrations/002_settled_attempts_idx.sql",
	}, names)

	for _, name := range names {
		body, err := migrations.ReadFile(name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(body), "-- +goose Up"), name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}

	schema, err := migrations.ReadFile(names[0])
	require.NoError(t, err)
	assert.Contains(t, string(schema), "CHECK (total_amount = amount + tax_amount)")
	assert.NotContains(t, strings.ToLower(string(schema)), "secret")
}

func TestNewProvider(t *testing.T) {
	// lib/pq connects lazily, so no server is needed to list sources
	raw, err := sql.Open("postgres", "host=127.0.0.1 port=1 sslmode=disable")
	require.NoError(t, err)
	defer raw.Close()

	provider, err := newProvider(sqlx.NewDb(raw, "postgres"))
	require.NoError(t, err)

	var versions []int64
	for _, src := range provider.ListSources() {
		versions = append(versions, src.Version)
	}
	assert.Equal(t, []int64{1, 2}, versions)
}
