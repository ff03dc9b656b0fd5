package nexo

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportImport_RoundTrip(t *testing.T) {
	src := newTestApp(t)
	mustCreate(t, src, NewUser("Ana", "a@x.com", "", "pw"))
	acc, err := src.Ledger.Add("Banco Solar", "100,00")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := src.Journal.Post(NewTransaction("Supermercado", M(30), Debit, "Alimentação"), acc.ID); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if err := src.Themes.SetTheme(AppTheme{Primary: "#111111", Secondary: "#222222"}); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}

	var dump bytes.Buffer
	if err := src.Export(&dump); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := newTestApp(t)
	if err := dst.Import(&dump); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	users, _ := dst.Directory.Users()
	if len(users) != 1 || users[0].Email != "a@x.com" {
		t.Errorf("imported users = %+v, want Ana", users)
	}
	accounts, _ := dst.Ledger.Accounts()
	if len(accounts) != 1 || !accounts[0].Balance.Equal(M(70)) {
		t.Errorf("imported accounts = %+v, want balance 70", accounts)
	}
	txs, _ := dst.Journal.Transactions()
	if len(txs) != 1 || txs[0].Description != "Supermercado" {
		t.Errorf("imported journal = %+v, want the posted entry", txs)
	}
	theme, _ := dst.Themes.Theme()
	if theme.Primary != "#111111" {
		t.Errorf("imported theme = %+v", theme)
	}
}

func TestExport_OmitsAbsentCollections(t *testing.T) {
	app := newTestApp(t)
	mustCreate(t, app, NewUser("Ana", "a@x.com", "", "pw"))

	var dump bytes.Buffer
	if err := app.Export(&dump); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	out := dump.String()
	if !strings.Contains(out, KeyUsers) {
		t.Errorf("export is missing the %s collection:\n%s", KeyUsers, out)
	}
	for _, absent := range []string{KeyAccounts, KeyTransactions, KeyTheme, KeyUserSession} {
		if strings.Contains(out, absent) {
			t.Errorf("export holds the never written %s collection:\n%s", absent, out)
		}
	}
}

func TestImport_FindsWrappedCollections(t *testing.T) {
	// A dump wrapped by a backup tool: the collections sit below an
	// envelope, not at the top level.
	dump := `{
	  "tool": "homebackup",
	  "payload": {
	    "nexo_users": [{"id":"u1","name":"Ana","email":"a@x.com","password":"pw","active":true,"role":"user","hasPaid":false,"onboardingComplete":false}],
	    "nexo_theme": {"primary":"#333333","secondary":"#444444"}
	  }
	}`

	app := newTestApp(t)
	if err := app.Import(strings.NewReader(dump)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	users, _ := app.Directory.Users()
	if len(users) != 1 || users[0].Email != "a@x.com" {
		t.Errorf("users = %+v, want Ana from the wrapped dump", users)
	}
	theme, _ := app.Themes.Theme()
	if theme.Primary != "#333333" {
		t.Errorf("theme = %+v, want the wrapped palette", theme)
	}
}

func TestImport_MissingKeysLeaveStoreUntouched(t *testing.T) {
	app := newTestApp(t)
	mustCreate(t, app, NewUser("Ana", "a@x.com", "", "pw"))

	if err := app.Import(strings.NewReader(`{"nexo_theme": {"primary":"#555555","secondary":"#666666"}}`)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	users, _ := app.Directory.Users()
	if len(users) != 1 {
		t.Errorf("users collection was touched by a dump without it: %+v", users)
	}
	theme, _ := app.Themes.Theme()
	if theme.Primary != "#555555" {
		t.Errorf("theme = %+v, want the imported one", theme)
	}
}
