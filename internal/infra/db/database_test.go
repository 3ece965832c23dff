package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/config"
)

type probe struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver:     DriverSQLite,
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.Ping(context.Background()))
	require.NoError(t, database.AutoMigrate(&probe{}))
	require.NoError(t, database.DB().Create(&probe{Name: "ok"}).Error)

	var count int64
	require.NoError(t, database.DB().Model(&probe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})

	assert.Nil(t, database)
	assert.ErrorContains(t, err, "unsupported database driver")
}
