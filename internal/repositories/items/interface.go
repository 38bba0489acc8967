// Package items persists item records. Owners are stored by user id; the
// item registry resolves them when loading.
package items

import (
	"context"

	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

// Repository loads and stores the complete list of items at once.
type Repository interface {
	// LoadAll returns every stored record in store order. A store that does
	// not exist yet yields an empty slice.
	LoadAll(ctx context.Context) ([]models.ItemRecord, error)

	// SaveAll replaces the stored list with records.
	SaveAll(ctx context.Context, records []models.ItemRecord) error
}
