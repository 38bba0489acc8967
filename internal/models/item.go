package models

import (
	"strings"

	"github.com/google/uuid"
)

// Item is an object offered by a user.
//
// ID only lives in memory: it is assigned when the item is created or loaded
// and is used to tell apart items that share a name. Owner is a live pointer
// into the user registry.
type Item struct {
	ID          uuid.UUID
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Category    string `validate:"required"`
	Owner       *User  `validate:"-"`
}

// ItemRecord is the persisted shape of an Item; the owner is referenced by id.
type ItemRecord struct {
	Name        string
	Description string
	Category    string
	OwnerID     int64
}

// Record converts the item to its persisted shape.
func (i *Item) Record() ItemRecord {
	return ItemRecord{
		Name:        i.Name,
		Description: i.Description,
		Category:    i.Category,
		OwnerID:     i.Owner.ID,
	}
}

// OwnedBy reports whether u owns the item.
func (i *Item) OwnedBy(u *User) bool {
	return u != nil && i.Owner != nil && i.Owner.ID == u.ID
}

// Matches is the search predicate: category must be a substring of the
// item's category, and keyword must occur, ignoring case, in the name or the
// description.
func (i *Item) Matches(category, keyword string) bool {
	if !strings.Contains(i.Category, category) {
		return false
	}
	kw := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(i.Name), kw) ||
		strings.Contains(strings.ToLower(i.Description), kw)
}

// ShortID returns the first eight hex digits of the id, enough to pick an
// item in the REPL.
func (i *Item) ShortID() string {
	return i.ID.String()[:8]
}
