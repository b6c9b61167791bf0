package sqlitekv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepository_ReadAbsent(t *testing.T) {
	repo := setupTestRepository(t)

	data, found, err := repo.Read(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestSQLiteRepository_WriteRead(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	payload := []byte(`{"entries":[],"reflections":{}}`)
	require.NoError(t, repo.Write(ctx, payload))

	data, found, err := repo.Read(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, data)
}

func TestSQLiteRepository_WriteOverwrites(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, []byte(`{"v":1}`)))
	require.NoError(t, repo.Write(ctx, []byte(`{"v":2}`)))

	data, found, err := repo.Read(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"v":2}`), data)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, []byte(`{}`)))
	require.NoError(t, repo.Delete(ctx))

	_, found, err := repo.Read(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	// deleting an absent document is not an error
	assert.NoError(t, repo.Delete(ctx))
}

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "disk full message", err: errors.New("database or disk is full"), expected: true},
		{name: "sqlite code", err: errors.New("SQLITE_FULL: insert failed"), expected: true},
		{name: "unrelated failure", err: errors.New("table is locked"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isQuotaError(tt.err))
		})
	}
}
