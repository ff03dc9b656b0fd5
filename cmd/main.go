// Package cmd implements the subcommands of the nexo command-line tool.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/nexofin/nexo"
)

// Commands lists every built-in subcommand, in registration order.
var Commands = []subcommands.Command{
	&registerCmd{},
	&loginCmd{},
	&logoutCmd{},
	&recoverCmd{},

	&adminLoginCmd{},
	&usersCmd{},
	&createUserCmd{},
	&toggleUserCmd{},
	&setRoleCmd{},
	&resetPasswordCmd{},
	&deleteUserCmd{},

	&accountsCmd{},
	&addAccountCmd{},
	&deleteAccountCmd{},

	&creditCmd{},
	&debitCmd{},
	&transactionsCmd{},
	&dashboardCmd{},

	&themeCmd{},
	&setThemeCmd{},

	&exportCmd{},
	&importCmd{},
	&topicCmd{},
}

// CommandNames returns the names of all built-in subcommands, for shell
// completion and for telling extensions apart from typos.
func CommandNames() []string {
	names := make([]string, 0, len(Commands))
	for _, c := range Commands {
		names = append(names, c.Name())
	}
	return names
}

var dataDir = flag.String("data-dir", "", "Path to the data directory (overrides NEXO_DATA_DIR)")

// openApp loads the configuration and opens the application over the
// durable store.
func openApp() (*nexo.App, error) {
	cfg, err := nexo.LoadConfig()
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	return nexo.Open(cfg)
}

// requireUser returns the logged-in user, or an error telling how to log in.
func requireUser(app *nexo.App) (nexo.User, error) {
	u, ok, err := app.Sessions.UserSession()
	if err != nil {
		return nexo.User{}, err
	}
	if !ok {
		return nexo.User{}, errors.New("no user session, run `nexo login` first")
	}
	return u, nil
}

// requireAdmin fails unless an admin console session is open.
func requireAdmin(app *nexo.App) error {
	active, err := app.Sessions.AdminSession()
	if err != nil {
		return err
	}
	if !active {
		return errors.New("no admin session, run `nexo admin` first")
	}
	return nil
}

// fail prints the error and returns the failure status. It keeps Execute
// bodies short.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer cannot run.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
