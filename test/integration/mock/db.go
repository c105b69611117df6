package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection for the test suite. A single
// pooled connection keeps every scenario on the same memory store.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens (once) the in-memory database, migrates the given models and
// returns the shared handle. models maps table names to model pointers so the
// database assertion steps can resolve tables by name.
func NewDb(models map[string]any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := dbConn.AutoMigrate(modelList...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database. err: %s", err.Error()))
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// ClearDB empties every table between scenarios. Tables referencing others
// are listed first in deleteOrder so row deletion never trips a foreign key.
func (d *Db) ClearDB() error {
	for _, table := range d.deleteOrder() {
		model := d.models[table]
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

func (d *Db) deleteOrder() []string {
	ordered := make([]string, 0, len(d.models))
	if _, ok := d.models["lavagens"]; ok {
		ordered = append(ordered, "lavagens")
	}
	for table := range d.models {
		if table == "lavagens" {
			continue
		}
		ordered = append(ordered, table)
	}
	return ordered
}

// GetModel resolves a model pointer by table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
