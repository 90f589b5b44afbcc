// Package dbtest opens migrated in-memory sqlite stores for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"real-estate-go/internal/config"
	"real-estate-go/internal/db"
	"real-estate-go/pkg/logger"
)

func Open(t testing.TB) *gorm.DB {
	t.Helper()

	conn, err := db.NewSQLite(config.DBConfig{Driver: config.DriverSQLite, Path: ":memory:"}, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })

	require.NoError(t, db.Migrate(conn))
	return conn
}

// Count returns the number of rows in table.
func Count(t testing.TB, conn *gorm.DB, table string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, conn.Table(table).Count(&count).Error)
	return count
}
