package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/itemkeeper/internal/dbx"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

// SQLiteRepository implements Repository on the users table.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a new SQLiteRepository bound to db.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT user_id, name, address, phone, email, password, role, is_verified
		FROM users ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		var (
			u    models.User
			role string
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Address, &u.Phone, &u.Email, &u.Password, &role, &u.Verified); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Role = models.Role(role)
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) SaveAll(ctx context.Context, users []models.User) error {
	query := `INSERT INTO users (seq, user_id, name, address, phone, email, password, role, is_verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	rows := make([][]any, len(users))
	for i, u := range users {
		rows[i] = []any{i, u.ID, u.Name, u.Address, u.Phone, u.Email, u.Password, string(u.Role), u.Verified}
	}

	if err := dbx.ReplaceAll(ctx, r.db, "users", query, rows); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}
