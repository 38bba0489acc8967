// Package categories persists the item category registry.
package categories

import (
	"context"

	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

// Repository loads and stores the complete list of categories at once.
// Order is the registry's insertion order.
type Repository interface {
	LoadAll(ctx context.Context) ([]models.Category, error)
	SaveAll(ctx context.Context, categories []models.Category) error
}
