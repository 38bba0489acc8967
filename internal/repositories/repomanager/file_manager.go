package repomanager

import (
	"github.com/dmitrijs2005/itemkeeper/internal/config"
	"github.com/dmitrijs2005/itemkeeper/internal/filex"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/categories"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/items"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/users"
)

// FileRepositoryManager vends the text-file repositories living in one
// data directory.
type FileRepositoryManager struct {
	users      *users.FileRepository
	items      *items.FileRepository
	categories *categories.FileRepository
}

// NewFileRepositoryManager creates cfg.DataDir when missing.
func NewFileRepositoryManager(cfg *config.Config) (*FileRepositoryManager, error) {
	if _, err := filex.EnsureDir(cfg.DataDir); err != nil {
		return nil, err
	}

	return &FileRepositoryManager{
		users:      users.NewFileRepository(cfg.Path(cfg.UsersFile)),
		items:      items.NewFileRepository(cfg.Path(cfg.ItemsFile)),
		categories: categories.NewFileRepository(cfg.Path(cfg.CategoriesFile)),
	}, nil
}

func (m *FileRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *FileRepositoryManager) Items() items.Repository {
	return m.items
}

func (m *FileRepositoryManager) Categories() categories.Repository {
	return m.categories
}

// Close is a no-op: every write already went to disk.
func (m *FileRepositoryManager) Close() error {
	return nil
}
