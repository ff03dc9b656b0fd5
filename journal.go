package nexo

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TxKind tells whether an entry credits or debits its account.
type TxKind string

const (
	Credit TxKind = "credit"
	Debit  TxKind = "debit"
)

// ParseTxKind parses a transaction kind.
func ParseTxKind(s string) (TxKind, bool) {
	switch TxKind(s) {
	case Credit, Debit:
		return TxKind(s), true
	}
	return "", false
}

// Transaction is a journal entry. Amount is always positive; the kind
// carries the direction. Entries are immutable once posted: there is no
// reversal or edit operation.
type Transaction struct {
	ID          string `json:"id"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
	Kind        TxKind `json:"type"`
	Category    string `json:"category"`
}

// NewTransaction creates an entry dated today with a fresh id.
func NewTransaction(description string, amount Money, kind TxKind, category string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Date:        Today(),
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
	}
}

// Journal is the append-only list of financial entries, stored newest
// first. Posting an entry and adjusting the linked account balance is the
// one cross-entity invariant in the core, so the journal owns a reference
// to the ledger.
type Journal struct {
	store  Store
	ledger *Ledger
	log    *logrus.Logger
}

func NewJournal(store Store, ledger *Ledger, log *logrus.Logger) *Journal {
	return &Journal{store: store, ledger: ledger, log: log}
}

// Transactions returns all journal entries, newest first. An absent
// collection reads as empty.
func (j *Journal) Transactions() ([]Transaction, error) {
	txs, _, err := loadRecord[[]Transaction](j.store, KeyTransactions)
	return txs, err
}

// Post records the entry at the head of the journal, then adjusts the
// linked account balance by +amount (credit) or -amount (debit).
//
// The journal write always lands. When accountID is not in the ledger the
// balance adjustment reports ErrNotFound and the recorded entry stays
// without a matching balance change; that drift is accepted and it is the
// caller's decision whether to surface it.
func (j *Journal) Post(tx Transaction, accountID string) error {
	txs, err := j.Transactions()
	if err != nil {
		return err
	}
	txs = append([]Transaction{tx}, txs...)
	if err := saveRecord(j.store, KeyTransactions, txs); err != nil {
		return err
	}
	j.log.WithFields(logrus.Fields{
		"id":      tx.ID,
		"kind":    tx.Kind,
		"account": accountID,
	}).Debug("transaction posted")
	return j.ledger.AdjustBalance(accountID, tx.Amount, tx.Kind)
}
