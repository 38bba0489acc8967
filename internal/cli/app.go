package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/itemkeeper/internal/logging"
	"github.com/dmitrijs2005/itemkeeper/internal/services"
)

type App struct {
	session *services.Session
	admin   *services.Admin
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	fd      int
}

// NewApp binds the REPL to a session. in and out are usually os.Stdin and
// os.Stdout; passwords are read without echo when in is a terminal.
func NewApp(session *services.Session, log logging.Logger, in io.Reader, out io.Writer) *App {
	fd := noTerminal
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}

	return &App{
		session: session,
		admin:   services.NewAdmin(session),
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
		fd:      fd,
	}
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn(a.out, "Welcome to itemkeeper (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	a.log.Debug(ctx, "repl finished")
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}

func (a *App) getStatus() string {
	u := a.session.Current()
	if u == nil {
		return ""
	}
	if u.IsAdmin() {
		return fmt.Sprintf("(%s, admin)", u.Name)
	}
	return fmt.Sprintf("(%s)", u.Name)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) askPassword(prompt string) (string, error) {
	return getPassword(a.reader, prompt, a.out, a.fd)
}
