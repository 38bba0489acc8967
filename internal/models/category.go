package models

// Category is an item category managed by administrators.
type Category struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
}
