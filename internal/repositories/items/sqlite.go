package items

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/itemkeeper/internal/dbx"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

// SQLiteRepository implements Repository on the items table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]models.ItemRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, description, category, owner_id FROM items ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	result := make([]models.ItemRecord, 0)
	for rows.Next() {
		var rec models.ItemRecord
		if err := rows.Scan(&rec.Name, &rec.Description, &rec.Category, &rec.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) SaveAll(ctx context.Context, records []models.ItemRecord) error {
	query := `INSERT INTO items (seq, name, description, category, owner_id) VALUES (?, ?, ?, ?, ?)`

	rows := make([][]any, len(records))
	for i, rec := range records {
		rows[i] = []any{i, rec.Name, rec.Description, rec.Category, rec.OwnerID}
	}

	if err := dbx.ReplaceAll(ctx, r.db, "items", query, rows); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}
