package database_test

import (
	"context"
	"testing"

	"github.com/hpvvs/salesops_backend/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMigrationDirection(t *testing.T) {
	dir, err := database.ParseMigrationDirection("")
	require.NoError(t, err)
	assert.Equal(t, database.MigrateUp, dir)

	dir, err = database.ParseMigrationDirection("down")
	require.NoError(t, err)
	assert.Equal(t, database.MigrateDown, dir)

	_, err = database.ParseMigrationDirection("sideways")
	assert.Error(t, err)
}

func TestNewPgxPoolRequiresURL(t *testing.T) {
	_, err := database.NewPgxPool(context.Background(), "", false)
	assert.Error(t, err)
}
