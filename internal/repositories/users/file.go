package users

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/itemkeeper/internal/filex"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

// userLine is the on-disk shape of a user, one JSON object per line.
type userLine struct {
	UserID     int64  `json:"user_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

// FileRepository implements Repository on top of a JSON-lines file.
type FileRepository struct {
	path string
}

// NewFileRepository returns a FileRepository bound to path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) LoadAll(ctx context.Context) ([]models.User, error) {
	result := make([]models.User, 0)

	err := filex.ReadLines(r.path, func(n int, line []byte) error {
		var ul userLine
		if err := json.Unmarshal(line, &ul); err != nil {
			return fmt.Errorf("%s:%d: malformed user record: %w", r.path, n, err)
		}
		result = append(result, models.User{
			ID:       ul.UserID,
			Name:     ul.Name,
			Address:  ul.Address,
			Phone:    ul.Phone,
			Email:    ul.Email,
			Password: ul.Password,
			Role:     models.Role(ul.Role),
			Verified: ul.IsVerified,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *FileRepository) SaveAll(ctx context.Context, users []models.User) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	for _, u := range users {
		if err := enc.Encode(userLine{
			UserID:     u.ID,
			Name:       u.Name,
			Address:    u.Address,
			Phone:      u.Phone,
			Email:      u.Email,
			Password:   u.Password,
			Role:       string(u.Role),
			IsVerified: u.Verified,
		}); err != nil {
			return fmt.Errorf("failed to encode user %d: %w", u.ID, err)
		}
	}

	if err := filex.WriteFileAtomic(r.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}
