package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/logging"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/categories"
)

// CategoryRegistry maps category names to descriptions.
type CategoryRegistry struct {
	repo   categories.Repository
	log    logging.Logger
	names  []string
	byName map[string]string
}

func NewCategoryRegistry(repo categories.Repository, log logging.Logger) *CategoryRegistry {
	return &CategoryRegistry{
		repo:   repo,
		log:    log,
		byName: make(map[string]string),
	}
}

// Load replaces the registry content with the stored categories. A repeated
// name keeps its first position and its last description.
func (r *CategoryRegistry) Load(ctx context.Context) error {
	records, err := r.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	r.names = r.names[:0]
	r.byName = make(map[string]string, len(records))
	for _, c := range records {
		r.set(c.Name, c.Description)
	}

	r.log.Debug(ctx, "categories loaded", "count", len(r.names))
	return nil
}

// Add stores a category, replacing the description of an existing one.
func (r *CategoryRegistry) Add(ctx context.Context, name, description string) error {
	c := models.Category{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := validateStruct(&c); err != nil {
		return err
	}

	prev, existed := r.byName[c.Name]
	r.set(c.Name, c.Description)

	if err := r.Save(ctx); err != nil {
		if existed {
			r.byName[c.Name] = prev
		} else {
			r.unset(c.Name)
		}
		return err
	}

	r.log.Info(ctx, "category added", "category", c.Name, "replaced", existed)
	return nil
}

// Delete removes the named category. Items tagged with it are not touched.
func (r *CategoryRegistry) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	prev, ok := r.byName[name]
	if !ok {
		return notFoundCategory(name)
	}

	pos := slices.Index(r.names, name)
	r.unset(name)

	if err := r.Save(ctx); err != nil {
		r.names = slices.Insert(r.names, pos, name)
		r.byName[name] = prev
		return err
	}

	r.log.Info(ctx, "category deleted", "category", name)
	return nil
}

// Modify replaces the description of an existing category.
func (r *CategoryRegistry) Modify(ctx context.Context, name, description string) error {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	prev, ok := r.byName[name]
	if !ok {
		return notFoundCategory(name)
	}
	if err := requireValue("description", description); err != nil {
		return err
	}

	r.byName[name] = description
	if err := r.Save(ctx); err != nil {
		r.byName[name] = prev
		return err
	}

	r.log.Info(ctx, "category modified", "category", name)
	return nil
}

func (r *CategoryRegistry) Get(name string) (models.Category, bool) {
	d, ok := r.byName[name]
	if !ok {
		return models.Category{}, false
	}
	return models.Category{Name: name, Description: d}, true
}

func (r *CategoryRegistry) Exists(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// All returns the categories in insertion order.
func (r *CategoryRegistry) All() []models.Category {
	out := make([]models.Category, len(r.names))
	for i, n := range r.names {
		out[i] = models.Category{Name: n, Description: r.byName[n]}
	}
	return out
}

func (r *CategoryRegistry) Names() []string {
	return slices.Clone(r.names)
}

// Save writes every category to the repository.
func (r *CategoryRegistry) Save(ctx context.Context) error {
	if err := r.repo.SaveAll(ctx, r.All()); err != nil {
		r.log.Error(ctx, "failed to save categories", "error", err)
		return err
	}
	return nil
}

func (r *CategoryRegistry) set(name, description string) {
	if _, ok := r.byName[name]; !ok {
		r.names = append(r.names, name)
	}
	r.byName[name] = description
}

func (r *CategoryRegistry) unset(name string) {
	delete(r.byName, name)
	if i := slices.Index(r.names, name); i >= 0 {
		r.names = slices.Delete(r.names, i, i+1)
	}
}

func notFoundCategory(name string) error {
	return fmt.Errorf("category %q %w", name, common.ErrorNotFound)
}
