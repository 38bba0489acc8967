// Package cli provides the interactive itemkeeper command-line front end.
//
// App reads commands in a REPL, prompts for the fields each command needs,
// calls the session and admin services, and prints either the result or
// "Error: <message>". Which commands are listed by "help" depends on
// whether somebody is logged in and on their role.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends. See runREPL for the command table.
package cli
