package categories

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/itemkeeper/internal/filex"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

// ErrMultiline is returned when a category value would span several lines.
var ErrMultiline = errors.New("line breaks are not allowed in categories")

// FileRepository stores one "name,description" line per category.
//
// Values are CSV-quoted only when they need it, so plain categories keep the
// bare name,description layout. Each line is parsed on its own: a line that
// is a well-formed two-field CSV record is unquoted, anything else is split
// at the first comma the way legacy stores were written.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) LoadAll(ctx context.Context) ([]models.Category, error) {
	result := make([]models.Category, 0)

	err := filex.ReadLines(r.path, func(n int, line []byte) error {
		if c, ok := parseLine(string(line)); ok {
			result = append(result, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// parseLine skips lines without a comma.
func parseLine(line string) (models.Category, bool) {
	if strings.Contains(line, `"`) {
		cr := csv.NewReader(strings.NewReader(line))
		rec, err := cr.Read()
		if err == nil && len(rec) == 2 {
			return models.Category{Name: rec[0], Description: rec[1]}, true
		}
	}

	name, description, ok := strings.Cut(line, ",")
	if !ok {
		return models.Category{}, false
	}
	return models.Category{Name: name, Description: description}, true
}

func (r *FileRepository) SaveAll(ctx context.Context, categories []models.Category) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	for _, c := range categories {
		if strings.ContainsAny(c.Name+c.Description, "\r\n") {
			return fmt.Errorf("category %q: %w", c.Name, ErrMultiline)
		}
		if err := cw.Write([]string{c.Name, c.Description}); err != nil {
			return fmt.Errorf("failed to encode category %q: %w", c.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}

	if err := filex.WriteFileAtomic(r.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return nil
}
