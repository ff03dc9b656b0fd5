package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/nexofin/nexo/renderer"
)

// recentTransactions is how many journal entries the dashboard shows.
const recentTransactions = 4

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "Show the dashboard of the logged-in user" }
func (*dashboardCmd) Usage() string {
	return `dashboard

  Prints the account balances, the total, and the most recent transactions
  of the logged-in user. Requires a user session.
`
}

func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	user, err := requireUser(app)
	if err != nil {
		return fail(err)
	}
	accounts, err := app.Ledger.Accounts()
	if err != nil {
		return fail(err)
	}
	total, err := app.Ledger.TotalBalance()
	if err != nil {
		return fail(err)
	}
	txs, err := app.Journal.Transactions()
	if err != nil {
		return fail(err)
	}
	d := renderer.NewDashboard(user, accounts, total, txs, recentTransactions)
	printMarkdown(renderer.RenderDashboard(d))
	return subcommands.ExitSuccess
}
