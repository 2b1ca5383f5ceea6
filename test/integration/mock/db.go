package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbOnce sync.Once
	db     *Db
)

// Table names a model the suite can query by table name.
type Table struct {
	Name  string
	Model any
}

// Db is the in-memory database shared by every scenario of a suite run.
type Db struct {
	DbConn *gorm.DB
	tables []Table
}

// NewDb opens the shared database once and migrates the tables, parents first.
func NewDb(name string, tables ...Table) *Db {
	dbOnce.Do(func() {
		db = openShared(name, tables)
	})
	return db
}

func openShared(name string, tables []Table) *Db {
	dbSQL, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	models := make([]any, len(tables))
	for i, t := range tables {
		models[i] = t.Model
	}
	if err := dbConn.AutoMigrate(models...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{
		DbConn: dbConn,
		tables: tables,
	}
}

// ClearDB removes every row, children before parents.
func (d *Db) ClearDB() error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		for i := len(d.tables) - 1; i >= 0; i-- {
			if err := tx.Exec("DELETE FROM " + d.tables[i].Name).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", d.tables[i].Name, err)
			}
		}
		return nil
	})
}

// GetModel returns the model registered for the table.
func (d *Db) GetModel(table string) (any, bool) {
	for _, t := range d.tables {
		if t.Name == table {
			return t.Model, true
		}
	}
	return nil, false
}
