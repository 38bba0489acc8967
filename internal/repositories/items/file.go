package items

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/itemkeeper/internal/filex"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

type itemLine struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	OwnerID     int64  `json:"owner_id"`
}

// FileRepository implements Repository on top of a JSON-lines file.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) LoadAll(ctx context.Context) ([]models.ItemRecord, error) {
	result := make([]models.ItemRecord, 0)

	err := filex.ReadLines(r.path, func(n int, line []byte) error {
		var il itemLine
		if err := json.Unmarshal(line, &il); err != nil {
			return fmt.Errorf("%s:%d: malformed item record: %w", r.path, n, err)
		}
		result = append(result, models.ItemRecord(il))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *FileRepository) SaveAll(ctx context.Context, records []models.ItemRecord) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	for _, rec := range records {
		if err := enc.Encode(itemLine(rec)); err != nil {
			return fmt.Errorf("failed to encode item %q: %w", rec.Name, err)
		}
	}

	if err := filex.WriteFileAtomic(r.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}
