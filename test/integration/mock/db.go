package mock

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/finance-tracker/reports-api/config"
	"github.com/finance-tracker/reports-api/internal/infra/db"
)

var (
	dbOnce sync.Once
	testDb *Db
)

// Db is an in-memory SQLite database shared by every scenario. Models are
// keyed by table name.
type Db struct {
	Database *db.Database
	DbConn   *gorm.DB
	models   map[string]any
}

// NewDb opens the shared database and migrates the given models on first use.
func NewDb(name string, models map[string]any) *Db {
	dbOnce.Do(func() {
		testDb = open(name, models)
	})
	return testDb
}

func open(name string, models map[string]any) *Db {
	database, err := db.Connect(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := database.AutoMigrate(modelList...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{
		Database: database,
		DbConn:   database.DB(),
		models:   models,
	}
}

// ClearDB removes every row, soft-deleted ones included.
func (d *Db) ClearDB() error {
	for table, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
