package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
)

// The admin commands check the role before prompting so that a regular
// user is not asked for input that will be rejected anyway.

func (a *App) Pending(ctx context.Context) error {
	users, err := a.admin.ListPending()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		a.println("No pending users.")
		return nil
	}
	for _, u := range users {
		a.println(formatUser(u))
	}
	return nil
}

func (a *App) Approve(ctx context.Context) error {
	if _, err := a.session.RequireAdmin(); err != nil {
		return err
	}

	text, err := a.ask("Enter user id to approve")
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return common.ErrorInvalidUserID
	}

	msg, err := a.admin.Approve(ctx, id)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) Users(ctx context.Context) error {
	users, err := a.admin.Users()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		a.println("No users.")
		return nil
	}
	for _, u := range users {
		a.println(formatUser(u))
	}
	return nil
}

func (a *App) ResetPassword(ctx context.Context) error {
	if _, err := a.session.RequireAdmin(); err != nil {
		return err
	}

	ref, err := a.ask("Enter user id or name")
	if err != nil {
		return err
	}
	target, err := a.admin.ResetTarget(ref)
	if err != nil {
		return err
	}
	password, err := a.ask("Enter new password")
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Reset password of user %s to %q?", target.Name, password), a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	msg, err := a.admin.ResetPassword(ctx, ref, password)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	if _, err := a.session.RequireAdmin(); err != nil {
		return err
	}

	name, err := a.ask("Enter category name")
	if err != nil {
		return err
	}
	description, err := a.ask("Enter category description")
	if err != nil {
		return err
	}

	msg, err := a.admin.AddCategory(ctx, name, description)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) DeleteCategory(ctx context.Context) error {
	if _, err := a.session.RequireAdmin(); err != nil {
		return err
	}

	a.printCategories()
	name, err := a.ask("Enter category name to delete")
	if err != nil {
		return err
	}

	msg, err := a.admin.DeleteCategory(ctx, name)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) ModifyCategory(ctx context.Context) error {
	if _, err := a.session.RequireAdmin(); err != nil {
		return err
	}

	a.printCategories()
	name, err := a.ask("Enter category name to modify")
	if err != nil {
		return err
	}
	description, err := a.ask("Enter new description")
	if err != nil {
		return err
	}

	msg, err := a.admin.ModifyCategory(ctx, name, description)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) AllItems(ctx context.Context) error {
	items, err := a.admin.AllItems()
	if err != nil {
		return err
	}
	a.printItems(items, "No items.")
	return nil
}
