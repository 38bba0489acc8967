package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/itemkeeper/internal/filex"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/categories"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/items"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/migrations"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/users"

	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends repositories backed by one SQLite database.
type SQLiteRepositoryManager struct {
	db *sql.DB
}

// runMigrations is a seam for tests.
var runMigrations = migrations.Run

// NewSQLiteRepositoryManager opens the database at path, creating its
// directory when needed, and brings the schema up to date.
func NewSQLiteRepositoryManager(ctx context.Context, path string) (*SQLiteRepositoryManager, error) {
	if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", path, err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteRepositoryManager{db: db}, nil
}

func (m *SQLiteRepositoryManager) Users() users.Repository {
	return users.NewSQLiteRepository(m.db)
}

func (m *SQLiteRepositoryManager) Items() items.Repository {
	return items.NewSQLiteRepository(m.db)
}

func (m *SQLiteRepositoryManager) Categories() categories.Repository {
	return categories.NewSQLiteRepository(m.db)
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}
