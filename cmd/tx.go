package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nexofin/nexo"
	"github.com/nexofin/nexo/renderer"
)

// txFlags holds the flags shared by the credit and debit commands.
type txFlags struct {
	account     string
	amount      string
	description string
	category    string
	date        string
}

func (c *txFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "ID of the bank account")
	f.StringVar(&c.amount, "amount", "", "Amount, decimal comma, for instance \"450,20\"")
	f.StringVar(&c.description, "desc", "", "Description of the transaction")
	f.StringVar(&c.category, "cat", "", "Category of the transaction")
	f.StringVar(&c.date, "d", nexo.Today().String(), "Date of the transaction (dd/mm/yyyy)")
}

// post records the transaction in the journal and applies it to the account.
func (c *txFlags) post(kind nexo.TxKind) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(app); err != nil {
		return fail(err)
	}
	day, err := nexo.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	tx := nexo.NewTransaction(c.description, nexo.ParseAmount(c.amount), kind, c.category)
	tx.Date = day
	if err := app.Journal.Post(tx, c.account); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s.\n", kind, tx.Amount)
	return subcommands.ExitSuccess
}

type creditCmd struct{ txFlags }

func (*creditCmd) Name() string     { return "credit" }
func (*creditCmd) Synopsis() string { return "Record money coming into an account" }
func (*creditCmd) Usage() string {
	return `credit -account <id> -amount <amount> -desc <description> [-cat <category>] [-d <date>]

  Records a credit in the journal and increases the account balance by the
  same amount.

Example:
  nexo credit -account 3f2c... -amount "2.500,00" -desc "Salário" -cat Renda
`
}

func (c *creditCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *creditCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.post(nexo.Credit)
}

type debitCmd struct{ txFlags }

func (*debitCmd) Name() string     { return "debit" }
func (*debitCmd) Synopsis() string { return "Record money leaving an account" }
func (*debitCmd) Usage() string {
	return `debit -account <id> -amount <amount> -desc <description> [-cat <category>] [-d <date>]

  Records a debit in the journal and decreases the account balance by the
  same amount. Balances are allowed to go negative.

Example:
  nexo debit -account 3f2c... -amount "450,20" -desc "Supermercado Solar" -cat Alimentação
`
}

func (c *debitCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *debitCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.post(nexo.Debit)
}

type transactionsCmd struct{}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "List the transaction history" }
func (*transactionsCmd) Usage() string {
	return `transactions

  Prints the whole journal, newest entries first. Requires a user session.
`
}

func (*transactionsCmd) SetFlags(*flag.FlagSet) {}

func (c *transactionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(app); err != nil {
		return fail(err)
	}
	txs, err := app.Journal.Transactions()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderJournal(renderer.NewJournal(txs)))
	return subcommands.ExitSuccess
}
