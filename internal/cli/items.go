package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/itemkeeper/internal/models"
)

var errNoCategories = errors.New("there are no categories yet, ask an administrator to add one")

func (a *App) printItems(items []*models.Item, empty string) {
	if len(items) == 0 {
		a.println(empty)
		return
	}
	for _, it := range items {
		a.println(formatItem(it))
	}
}

func (a *App) printCategories() bool {
	cats := a.session.Categories()
	if len(cats) == 0 {
		a.println("No categories.")
		return false
	}
	for _, c := range cats {
		a.println(formatCategory(c))
	}
	return true
}

// AddItem prompts for an item and stores it under the current user. The
// category has to be one of the listed ones.
func (a *App) AddItem(ctx context.Context) error {
	if _, err := a.session.RequireUser(); err != nil {
		return err
	}
	if len(a.session.Categories()) == 0 {
		return errNoCategories
	}

	name, err := a.ask("Enter item name")
	if err != nil {
		return err
	}
	description, err := a.ask("Enter item description")
	if err != nil {
		return err
	}
	a.printCategories()
	category, err := a.ask("Enter category")
	if err != nil {
		return err
	}

	it, err := a.session.AddItem(ctx, name, description, category)
	if err != nil {
		return err
	}
	a.printf("Item %q added [%s].\n", it.Name, it.ShortID())
	return nil
}

// MyItems lists the items of the current user.
func (a *App) MyItems(ctx context.Context) error {
	items, err := a.session.MyItems()
	if err != nil {
		return err
	}
	a.printItems(items, "You have no items.")
	return nil
}

// pickOwnItem lists the user's items and asks for one by name or id. ok is
// false when there is nothing to pick.
func (a *App) pickOwnItem(prompt string) (ref string, ok bool, err error) {
	items, err := a.session.MyItems()
	if err != nil {
		return "", false, err
	}
	if len(items) == 0 {
		a.println("You have no items.")
		return "", false, nil
	}
	a.printItems(items, "")
	ref, err = a.ask(prompt)
	return ref, err == nil, err
}

// ModifyItem renames one of the current user's items.
func (a *App) ModifyItem(ctx context.Context) error {
	ref, ok, err := a.pickOwnItem("Enter item name or id to modify")
	if err != nil || !ok {
		return err
	}
	name, err := a.ask("Enter new item name")
	if err != nil {
		return err
	}
	description, err := a.ask("Enter new item description")
	if err != nil {
		return err
	}

	msg, err := a.session.ModifyItem(ctx, ref, name, description)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

// DeleteItem deletes one of the current user's items after confirmation.
func (a *App) DeleteItem(ctx context.Context) error {
	ref, ok, err := a.pickOwnItem("Enter item name or id to delete")
	if err != nil || !ok {
		return err
	}

	ok, err = Confirm(a.reader, "Delete item "+ref+"?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	msg, err := a.session.DeleteItem(ctx, ref)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

// Search asks for a category and a keyword and prints the matches.
func (a *App) Search(ctx context.Context) error {
	if _, err := a.session.RequireUser(); err != nil {
		return err
	}

	a.printCategories()
	category, err := a.ask("Enter category")
	if err != nil {
		return err
	}
	keyword, err := a.ask("Enter keyword")
	if err != nil {
		return err
	}

	items, err := a.session.SearchItems(category, keyword)
	if err != nil {
		return err
	}
	a.printItems(items, "No matching items.")
	return nil
}

// Categories lists the registered categories.
func (a *App) Categories(ctx context.Context) error {
	a.printCategories()
	return nil
}
