package categories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/itemkeeper/internal/dbx"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

// SQLiteRepository implements Repository on the categories table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, description FROM categories ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}
	defer rows.Close()

	result := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) SaveAll(ctx context.Context, categories []models.Category) error {
	query := `INSERT INTO categories (seq, name, description) VALUES (?, ?, ?)`

	rows := make([][]any, len(categories))
	for i, c := range categories {
		rows[i] = []any{i, c.Name, c.Description}
	}

	if err := dbx.ReplaceAll(ctx, r.db, "categories", query, rows); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return nil
}
