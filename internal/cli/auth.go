package cli

import (
	"context"
)

// Register prompts for the contact fields and creates an account. The new
// account cannot log in until an administrator approves it.
func (a *App) Register(ctx context.Context) error {
	name, err := a.ask("Enter name")
	if err != nil {
		return err
	}
	address, err := a.ask("Enter address")
	if err != nil {
		return err
	}
	phone, err := a.ask("Enter phone")
	if err != nil {
		return err
	}
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}

	u, err := a.session.Register(ctx, name, address, phone, email)
	if err != nil {
		return err
	}

	a.printf("Registered %s with user id %d and password %q.\n", u.Name, u.ID, u.Password)
	a.println("An administrator has to approve the account before you can log in.")
	return nil
}

// Login prompts for a user id and password and opens a session.
func (a *App) Login(ctx context.Context) error {
	id, err := a.ask("Enter user id")
	if err != nil {
		return err
	}
	password, err := a.askPassword("Enter password")
	if err != nil {
		return err
	}

	u, err := a.session.LoginRaw(ctx, id, password)
	if err != nil {
		return err
	}

	if u.IsAdmin() {
		a.printf("Administrator %s logged in.\n", u.Name)
	} else {
		a.printf("%s logged in.\n", u.Name)
	}
	return nil
}

// Logout closes the session. It is allowed in any state.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.println("Logged out.")
	return nil
}
