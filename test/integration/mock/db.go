package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps an in-memory SQLite connection that stands in for PostgreSQL
// during integration tests.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared in-memory database and migrates the given models.
// The connection is a singleton so every scenario talks to the same schema.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(
		func() {
			db = open(models)
		},
	)

	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// SQLite allows a single writer. One connection keeps gorm from
	// tripping over locked tables under concurrent scenarios.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to test database. err: " + err.Error())
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}

	if err := conn.AutoMigrate(modelList...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database. err: %s", err.Error()))
	}

	return &Db{
		DbConn: conn,
		models: models,
	}
}

// ClearDB removes every row from every registered table.
func (d *Db) ClearDB() error {
	for table, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the registered model for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
