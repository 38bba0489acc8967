package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/logging"
	"github.com/dmitrijs2005/itemkeeper/internal/models"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/items"
)

// ItemRegistry is the ordered list of items. Owners are live pointers into
// a UserRegistry.
type ItemRegistry struct {
	repo  items.Repository
	log   logging.Logger
	items []*models.Item
}

func NewItemRegistry(repo items.Repository, log logging.Logger) *ItemRegistry {
	return &ItemRegistry{repo: repo, log: log}
}

// Load replaces the registry content with the stored items, resolving each
// owner through users. Items whose owner is unknown are dropped.
func (r *ItemRegistry) Load(ctx context.Context, users *UserRegistry) error {
	records, err := r.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}

	r.items = make([]*models.Item, 0, len(records))
	dropped := 0
	for _, rec := range records {
		owner, ok := users.Get(rec.OwnerID)
		if !ok {
			dropped++
			continue
		}
		r.items = append(r.items, &models.Item{
			ID:          uuid.New(),
			Name:        rec.Name,
			Description: rec.Description,
			Category:    rec.Category,
			Owner:       owner,
		})
	}

	if dropped > 0 {
		r.log.Warn(ctx, "items with unknown owner dropped", "count", dropped)
	}
	r.log.Debug(ctx, "items loaded", "count", len(r.items))
	return nil
}

// Add appends a new item owned by owner.
func (r *ItemRegistry) Add(ctx context.Context, name, description, category string, owner *models.User) (*models.Item, error) {
	if owner == nil {
		return nil, fmt.Errorf("%w: owner is required", common.ErrorValidation)
	}

	it := &models.Item{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Category:    strings.TrimSpace(category),
		Owner:       owner,
	}
	if err := validateStruct(it); err != nil {
		return nil, err
	}

	r.items = append(r.items, it)
	if err := r.Save(ctx); err != nil {
		r.items = r.items[:len(r.items)-1]
		return nil, err
	}

	r.log.Info(ctx, "item added", "item", it.Name, "owner_id", owner.ID)
	return it, nil
}

// Search returns, in list order, the items whose category contains
// category and whose name or description contains keyword ignoring case.
func (r *ItemRegistry) Search(category, keyword string) []*models.Item {
	var out []*models.Item
	for _, it := range r.items {
		if it.Matches(category, keyword) {
			out = append(out, it)
		}
	}
	return out
}

// Delete removes it from the list and returns a confirmation message.
func (r *ItemRegistry) Delete(ctx context.Context, it *models.Item) (string, error) {
	i := r.indexOf(it)
	if i < 0 {
		return "", notFoundItem(it)
	}

	r.items = slices.Delete(r.items, i, i+1)
	if err := r.Save(ctx); err != nil {
		r.items = slices.Insert(r.items, i, it)
		return "", err
	}

	r.log.Info(ctx, "item deleted", "item", it.Name, "owner_id", it.Owner.ID)
	return fmt.Sprintf("item %q deleted", it.Name), nil
}

// Modify renames it and replaces its description in place.
func (r *ItemRegistry) Modify(ctx context.Context, it *models.Item, name, description string) error {
	if r.indexOf(it) < 0 {
		return notFoundItem(it)
	}

	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if err := requireValue("name", name); err != nil {
		return err
	}
	if err := requireValue("description", description); err != nil {
		return err
	}

	prevName, prevDesc := it.Name, it.Description
	it.Name, it.Description = name, description
	if err := r.Save(ctx); err != nil {
		it.Name, it.Description = prevName, prevDesc
		return err
	}

	r.log.Info(ctx, "item modified", "item", it.Name, "previous", prevName)
	return nil
}

// OwnedBy returns the items of owner in list order.
func (r *ItemRegistry) OwnedBy(owner *models.User) []*models.Item {
	var out []*models.Item
	for _, it := range r.items {
		if it.OwnedBy(owner) {
			out = append(out, it)
		}
	}
	return out
}

func (r *ItemRegistry) All() []*models.Item {
	return slices.Clone(r.items)
}

func (r *ItemRegistry) Get(id uuid.UUID) (*models.Item, bool) {
	for _, it := range r.items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// minShortIDLen is the shortest id prefix FindOwned accepts.
const minShortIDLen = 4

// FindOwned picks one of owner's items by ref: a full id, an exact name, or
// an id prefix, tried in that order. Among equal names the first one wins.
func (r *ItemRegistry) FindOwned(owner *models.User, ref string) (*models.Item, error) {
	ref = strings.TrimSpace(ref)
	if err := requireValue("item", ref); err != nil {
		return nil, err
	}

	owned := r.OwnedBy(owner)
	if id, err := uuid.Parse(ref); err == nil {
		for _, it := range owned {
			if it.ID == id {
				return it, nil
			}
		}
	}
	for _, it := range owned {
		if it.Name == ref {
			return it, nil
		}
	}
	if len(ref) >= minShortIDLen {
		prefix := strings.ToLower(ref)
		for _, it := range owned {
			if strings.HasPrefix(it.ID.String(), prefix) {
				return it, nil
			}
		}
	}

	return nil, fmt.Errorf("item %q %w", ref, common.ErrorNotFound)
}

// Save writes every item to the repository.
func (r *ItemRegistry) Save(ctx context.Context) error {
	records := make([]models.ItemRecord, len(r.items))
	for i, it := range r.items {
		records[i] = it.Record()
	}

	if err := r.repo.SaveAll(ctx, records); err != nil {
		r.log.Error(ctx, "failed to save items", "error", err)
		return err
	}
	return nil
}

func (r *ItemRegistry) indexOf(it *models.Item) int {
	return slices.Index(r.items, it)
}

func notFoundItem(it *models.Item) error {
	name := ""
	if it != nil {
		name = it.Name
	}
	return fmt.Errorf("item %q %w", name, common.ErrorNotFound)
}
