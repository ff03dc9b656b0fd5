package nexo

import (
	"errors"
	"regexp"
	"testing"
)

func TestLedger_Add(t *testing.T) {
	app := newTestApp(t)
	acc, err := app.Ledger.Add("Banco Solar", "1.234,56")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !acc.Balance.Equal(M(1234.56)) {
		t.Errorf("opening balance = %s, want 1234.56", acc.Balance)
	}
	if ok, _ := regexp.MatchString(`^#[0-9a-f]{6}$`, acc.Color); !ok {
		t.Errorf("display color = %q, want #rrggbb", acc.Color)
	}

	accounts, err := app.Ledger.Accounts()
	if err != nil {
		t.Fatalf("Accounts failed: %v", err)
	}
	if len(accounts) != 1 || accounts[0].ID != acc.ID {
		t.Errorf("Accounts = %+v, want the single added account", accounts)
	}
}

func TestLedger_AddWithUnparseableBalance(t *testing.T) {
	app := newTestApp(t)
	acc, err := app.Ledger.Add("Banco Solar", "not a number")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !acc.Balance.IsZero() {
		t.Errorf("opening balance = %s, want zero for unparseable input", acc.Balance)
	}
}

func TestLedger_AdjustBalance(t *testing.T) {
	testCases := []struct {
		name    string
		opening string
		amount  Money
		kind    TxKind
		want    Money
	}{
		{name: "credit adds", opening: "100,00", amount: M(30), kind: Credit, want: M(130)},
		{name: "debit subtracts", opening: "100,00", amount: M(30), kind: Debit, want: M(70)},
		{name: "debit below zero", opening: "10,00", amount: M(30), kind: Debit, want: M(-20)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			acc, err := app.Ledger.Add("Banco Solar", tc.opening)
			if err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			if err := app.Ledger.AdjustBalance(acc.ID, tc.amount, tc.kind); err != nil {
				t.Fatalf("AdjustBalance failed: %v", err)
			}
			accounts, _ := app.Ledger.Accounts()
			if !accounts[0].Balance.Equal(tc.want) {
				t.Errorf("balance = %s, want %s", accounts[0].Balance, tc.want)
			}
		})
	}
}

func TestLedger_AdjustBalanceMissingAccount(t *testing.T) {
	app := newTestApp(t)
	if _, err := app.Ledger.Add("Banco Solar", "100,00"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := app.Ledger.AdjustBalance("ghost", M(30), Credit); !errors.Is(err, ErrNotFound) {
		t.Fatalf("AdjustBalance on missing id = %v, want ErrNotFound", err)
	}
	accounts, _ := app.Ledger.Accounts()
	if !accounts[0].Balance.Equal(M(100)) {
		t.Errorf("balance changed by a not-found adjustment: %s", accounts[0].Balance)
	}
}

func TestLedger_DeleteHasNoCascade(t *testing.T) {
	app := newTestApp(t)
	acc, err := app.Ledger.Add("Banco Solar", "100,00")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	tx := NewTransaction("Supermercado", M(30), Debit, "Alimentação")
	if err := app.Journal.Post(tx, acc.ID); err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	if err := app.Ledger.Delete(acc.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	accounts, _ := app.Ledger.Accounts()
	if len(accounts) != 0 {
		t.Errorf("Accounts = %+v, want empty", accounts)
	}
	// The journal keeps the entry; deleting an account never rewrites history.
	txs, _ := app.Journal.Transactions()
	if len(txs) != 1 {
		t.Errorf("journal lost entries on account deletion: %+v", txs)
	}
}

func TestLedger_TotalBalance(t *testing.T) {
	app := newTestApp(t)
	if _, err := app.Ledger.Add("Banco Solar", "100,50"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := app.Ledger.Add("Banco Lua", "899,50"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	total, err := app.Ledger.TotalBalance()
	if err != nil {
		t.Fatalf("TotalBalance failed: %v", err)
	}
	if !total.Equal(M(1000)) {
		t.Errorf("TotalBalance = %s, want 1000", total)
	}
}
