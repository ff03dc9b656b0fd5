package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nexofin/nexo/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "List bank accounts and the total balance" }
func (*accountsCmd) Usage() string {
	return `accounts

  Prints every bank account with its balance, and the total across all of
  them. Requires a user session.
`
}

func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (c *accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(app); err != nil {
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
	printMarkdown(renderer.RenderAccounts(renderer.NewAccounts(accounts, total)))
	return subcommands.ExitSuccess
}

type addAccountCmd struct {
	name    string
	balance string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "Add a bank account" }
func (*addAccountCmd) Usage() string {
	return `add-account -name <bank name> -balance <amount>

  Adds a bank account with an opening balance. Amounts use the decimal
  comma, for instance "1.234,56". A balance that does not parse counts as
  zero. Requires a user session.

Example:
  nexo add-account -name "Banco Azul" -balance "80,00"
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the bank")
	f.StringVar(&c.balance, "balance", "0", "Opening balance")
}

func (c *addAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(app); err != nil {
		return fail(err)
	}
	acc, err := app.Ledger.Add(c.name, c.balance)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added account %s (%s) with balance %s.\n", acc.BankName, acc.ID, acc.Balance)
	return subcommands.ExitSuccess
}

type deleteAccountCmd struct {
	id string
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "Remove a bank account" }
func (*deleteAccountCmd) Usage() string {
	return `delete-account -id <account id>

  Removes a bank account from the ledger. Journal entries that referenced
  it are kept. Requires a user session.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the account")
}

func (c *deleteAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(app); err != nil {
		return fail(err)
	}
	if err := app.Ledger.Delete(c.id); err != nil {
		return fail(err)
	}
	fmt.Println("Account deleted.")
	return subcommands.ExitSuccess
}
