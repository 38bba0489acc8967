package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Fprintln

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	AddItem(ctx context.Context) error
	MyItems(ctx context.Context) error
	ModifyItem(ctx context.Context) error
	DeleteItem(ctx context.Context) error
	Search(ctx context.Context) error
	Categories(ctx context.Context) error

	Pending(ctx context.Context) error
	Approve(ctx context.Context) error
	Users(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	AddCategory(ctx context.Context) error
	DeleteCategory(ctx context.Context) error
	ModifyCategory(ctx context.Context) error
	AllItems(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, exit"
	helpUser      = "Available commands: add, mine, modify, delete, search, categories, logout, exit"
	helpAdmin     = helpUser + "\nAdmin commands: pending, approve, users, resetpw, addcat, delcat, modcat, all"
)

// runREPL starts the read-eval-print loop.
//
// It reads a line from reader, takes the first token as the command and
// dispatches to a. Prompts, help and errors are written to out. A handler error is printed as "Error: <message>" and the
// loop goes on. The loop exits on EOF or when the user types "exit" or
// "quit".
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account (needs admin approval)
//	  - login          open a session
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - add            add an item
//	  - mine           list own items
//	  - modify         rename an own item
//	  - delete         delete an own item
//	  - search         search items by category and keyword
//	  - categories     list categories
//	  - logout         close the session
//
//	Administrators additionally:
//	  - pending        list users awaiting approval
//	  - approve        approve a user
//	  - users          list users
//	  - resetpw        reset a user's password
//	  - addcat         add or replace a category
//	  - delcat         delete a category
//	  - modcat         change a category description
//	  - all            list every item
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	commands := map[string]func(context.Context) error{
		"register":   a.Register,
		"login":      a.Login,
		"logout":     a.Logout,
		"add":        a.AddItem,
		"mine":       a.MyItems,
		"modify":     a.ModifyItem,
		"delete":     a.DeleteItem,
		"search":     a.Search,
		"categories": a.Categories,
		"pending":    a.Pending,
		"approve":    a.Approve,
		"users":      a.Users,
		"resetpw":    a.ResetPassword,
		"addcat":     a.AddCategory,
		"delcat":     a.DeleteCategory,
		"modcat":     a.ModifyCategory,
		"all":        a.AllItems,
	}

	for {
		printlnFn(out, fmt.Sprintf("itemkeeper %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn(out, helpAdmin)
			case a.isLoggedIn():
				printlnFn(out, helpUser)
			default:
				printlnFn(out, helpAnonymous)
			}
			continue

		case "exit", "quit":
			printlnFn(out, "Bye!")
			return
		}

		handler, ok := commands[cmd]
		if !ok {
			printlnFn(out, "Unknown command:", cmd)
			continue
		}
		if err := handler(ctx); err != nil {
			printlnFn(out, "Error:", err)
		}
	}
}
