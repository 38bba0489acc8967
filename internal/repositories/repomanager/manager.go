// Package repomanager opens the configured storage backend and vends the
// repositories bound to it.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/itemkeeper/internal/config"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/categories"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/items"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/users"
)

// RepositoryManager owns the lifetime of a storage backend.
type RepositoryManager interface {
	Users() users.Repository
	Items() items.Repository
	Categories() categories.Repository
	Close() error
}

// Open returns the RepositoryManager selected by cfg.Storage.
func Open(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.Storage {
	case config.StorageFile:
		return NewFileRepositoryManager(cfg)
	case config.StorageSQLite:
		return NewSQLiteRepositoryManager(ctx, cfg.Path(cfg.SQLiteFile))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
