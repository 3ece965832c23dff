package mock

import (
	"fmt"
	"sort"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbOnce sync.Once
	shared *Db
)

// Db is a process-wide in-memory SQLite database migrated with the given models.
type Db struct {
	DbConn *gorm.DB
	tables []string
	models map[string]any
}

// NewDb opens the shared database on first use. Later calls return the same instance.
func NewDb(name string, models map[string]any) *Db {
	dbOnce.Do(func() {
		conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		if err != nil {
			panic("failed to open test database: " + err.Error())
		}
		sqlDB, err := conn.DB()
		if err != nil {
			panic(err)
		}
		sqlDB.SetMaxOpenConns(1)

		tables := make([]string, 0, len(models))
		for table := range models {
			tables = append(tables, table)
		}
		sort.Strings(tables)

		shared = &Db{DbConn: conn, tables: tables, models: models}
		if err := shared.migrate(); err != nil {
			panic("failed to migrate test database: " + err.Error())
		}
	})
	return shared
}

func (d *Db) migrate() error {
	for _, table := range d.tables {
		if err := d.DbConn.AutoMigrate(d.models[table]); err != nil {
			return fmt.Errorf("migrate %s: %w", table, err)
		}
	}
	return nil
}

// ClearDB removes every row from the migrated tables.
func (d *Db) ClearDB() error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		for _, table := range d.tables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
}
