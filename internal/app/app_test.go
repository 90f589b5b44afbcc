package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-go/internal/config"
	"real-estate-go/internal/domain/estate"
	"real-estate-go/pkg/logger"
)

func TestNewPersistsAcrossSessions(t *testing.T) {
	cfg := config.Config{DB: config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "estate.db")}}
	ctx := context.Background()

	first, err := New(logger.Discard(), cfg)
	require.NoError(t, err)
	_, err = first.Estate().AddOwner(ctx, estate.NewOwner{FirstName: "Ona", LastName: "P", PhoneNumber: "1"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(logger.Discard(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	owners, err := second.Estate().ListOwners(ctx)
	require.NoError(t, err)
	assert.Len(t, owners, 1)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(logger.Discard(), config.Config{DB: config.DBConfig{Driver: "oracle"}})
	assert.Error(t, err)
}
