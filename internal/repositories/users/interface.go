// Package users persists user records. Two backends are provided: a
// JSON-lines text file (one object per line) and a SQLite table.
package users

import (
	"context"

	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

// Repository loads and stores the complete set of users at once.
type Repository interface {
	// LoadAll returns every stored user in store order. A store that does
	// not exist yet yields an empty slice.
	LoadAll(ctx context.Context) ([]models.User, error)

	// SaveAll replaces the stored set with users.
	SaveAll(ctx context.Context, users []models.User) error
}
