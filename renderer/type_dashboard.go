package renderer

import "github.com/nexofin/nexo"

// Dashboard is the view model of the user dashboard: account balances plus
// the most recent journal entries, everything already formatted for the
// template layer.
type Dashboard struct {
	UserName     string
	Total        string
	Accounts     []AccountRow
	Transactions []TransactionRow
}

// AccountRow is one formatted ledger line.
type AccountRow struct {
	BankName string
	Balance  string
	Color    string
}

// TransactionRow is one formatted journal line.
type TransactionRow struct {
	Date        string
	Description string
	Category    string
	Amount      string
}

// NewDashboard builds the dashboard view. The journal is expected newest
// first; only the first recent entries are shown.
func NewDashboard(user nexo.User, accounts []nexo.BankAccount, total nexo.Money, txs []nexo.Transaction, recent int) *Dashboard {
	d := &Dashboard{UserName: user.Name, Total: total.String()}
	for _, acc := range accounts {
		d.Accounts = append(d.Accounts, newAccountRow(acc))
	}
	if recent > 0 && len(txs) > recent {
		txs = txs[:recent]
	}
	for _, tx := range txs {
		d.Transactions = append(d.Transactions, newTransactionRow(tx))
	}
	return d
}

// Accounts is the view model of the accounts screen.
type Accounts struct {
	Rows  []AccountRow
	Total string
}

// NewAccounts builds the accounts view.
func NewAccounts(accounts []nexo.BankAccount, total nexo.Money) *Accounts {
	a := &Accounts{Total: total.String()}
	for _, acc := range accounts {
		a.Rows = append(a.Rows, newAccountRow(acc))
	}
	return a
}

// Journal is the view model of the full transaction history.
type Journal struct {
	Rows []TransactionRow
}

// NewJournal builds the transaction history view, newest first.
func NewJournal(txs []nexo.Transaction) *Journal {
	j := &Journal{}
	for _, tx := range txs {
		j.Rows = append(j.Rows, newTransactionRow(tx))
	}
	return j
}

func newAccountRow(acc nexo.BankAccount) AccountRow {
	return AccountRow{
		BankName: acc.BankName,
		Balance:  acc.Balance.String(),
		Color:    acc.Color,
	}
}

func newTransactionRow(tx nexo.Transaction) TransactionRow {
	signed := tx.Amount
	if tx.Kind == nexo.Debit {
		signed = signed.Neg()
	}
	return TransactionRow{
		Date:        tx.Date.String(),
		Description: tx.Description,
		Category:    tx.Category,
		Amount:      signed.SignedString(),
	}
}
