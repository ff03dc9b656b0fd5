package nexo

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BankAccount is a ledger record. Balance is authoritative cached state,
// not a derived value: transaction postings mutate it directly.
type BankAccount struct {
	ID       string `json:"id"`
	BankName string `json:"bankName"`
	Balance  Money  `json:"balance"`
	Color    string `json:"color"`
}

// Ledger is the CRUD surface over the bank-account collection.
type Ledger struct {
	store Store
	log   *logrus.Logger
}

func NewLedger(store Store, log *logrus.Logger) *Ledger {
	return &Ledger{store: store, log: log}
}

// Accounts returns all ledger records in insertion order. An absent
// collection reads as empty.
func (l *Ledger) Accounts() ([]BankAccount, error) {
	accounts, _, err := loadRecord[[]BankAccount](l.store, KeyAccounts)
	return accounts, err
}

// Add appends a new account. The opening balance accepts locale-formatted
// text (see ParseAmount); the display color is picked at random.
func (l *Ledger) Add(bankName, balanceText string) (BankAccount, error) {
	accounts, err := l.Accounts()
	if err != nil {
		return BankAccount{}, err
	}
	acc := BankAccount{
		ID:       uuid.NewString(),
		BankName: bankName,
		Balance:  ParseAmount(balanceText),
		Color:    randomColor(),
	}
	accounts = append(accounts, acc)
	if err := saveRecord(l.store, KeyAccounts, accounts); err != nil {
		return BankAccount{}, err
	}
	l.log.WithFields(logrus.Fields{"id": acc.ID, "bank": acc.BankName}).Debug("account added")
	return acc, nil
}

// Delete removes the account. Transactions already posted against it stay
// in the journal; there is no cascade.
func (l *Ledger) Delete(id string) error {
	accounts, err := l.Accounts()
	if err != nil {
		return err
	}
	kept := accounts[:0]
	for _, acc := range accounts {
		if acc.ID != id {
			kept = append(kept, acc)
		}
	}
	return saveRecord(l.store, KeyAccounts, kept)
}

// AdjustBalance applies +amount for a credit and -amount for a debit to the
// matching account. There is no floor: a balance may go negative. When the
// id is not in the ledger it returns ErrNotFound and leaves the store
// unchanged.
func (l *Ledger) AdjustBalance(id string, amount Money, kind TxKind) error {
	accounts, err := l.Accounts()
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].ID != id {
			continue
		}
		if kind == Debit {
			accounts[i].Balance = accounts[i].Balance.Sub(amount)
		} else {
			accounts[i].Balance = accounts[i].Balance.Add(amount)
		}
		return saveRecord(l.store, KeyAccounts, accounts)
	}
	return fmt.Errorf("account %q: %w", id, ErrNotFound)
}

// TotalBalance sums the balances of all accounts, for the dashboard.
func (l *Ledger) TotalBalance() (Money, error) {
	accounts, err := l.Accounts()
	if err != nil {
		return Money{}, err
	}
	var total Money
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
	}
	return total, nil
}

// randomColor picks a display color for a new account.
func randomColor() string {
	return fmt.Sprintf("#%06x", rand.Intn(0x1000000))
}
