package nexo

import "testing"

func TestSessions_DefaultsWhenAbsent(t *testing.T) {
	app := newTestApp(t)
	if _, ok, err := app.Sessions.UserSession(); err != nil || ok {
		t.Errorf("UserSession on empty store = ok=%v err=%v, want absent", ok, err)
	}
	active, err := app.Sessions.AdminSession()
	if err != nil || active {
		t.Errorf("AdminSession on empty store = %v err=%v, want false", active, err)
	}
}

func TestSessions_UserSnapshotIsVerbatim(t *testing.T) {
	app := newTestApp(t)
	u := NewUser("Ana", "a@x.com", "11 98765", "pw")
	if err := app.Sessions.SetUserSession(u); err != nil {
		t.Fatalf("SetUserSession failed: %v", err)
	}
	// Mutating the directory record afterwards must not alter the snapshot.
	mustCreate(t, app, u)
	if err := app.Directory.ResetPassword(u.ID, "changed"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}

	got, ok, err := app.Sessions.UserSession()
	if err != nil || !ok {
		t.Fatalf("UserSession = ok=%v err=%v", ok, err)
	}
	if got != u {
		t.Errorf("session snapshot = %+v, want the value persisted at login: %+v", got, u)
	}
}

func TestSessions_AreOrthogonal(t *testing.T) {
	app := newTestApp(t)
	u := NewUser("Ana", "a@x.com", "", "pw")

	// The manager itself performs no cross-validation between the two keys.
	if err := app.Sessions.SetUserSession(u); err != nil {
		t.Fatalf("SetUserSession failed: %v", err)
	}
	if err := app.Sessions.SetAdminSession(true); err != nil {
		t.Fatalf("SetAdminSession failed: %v", err)
	}
	if _, ok, _ := app.Sessions.UserSession(); !ok {
		t.Error("setting the admin flag cleared the user session")
	}
	if active, _ := app.Sessions.AdminSession(); !active {
		t.Error("admin flag not set")
	}

	if err := app.Sessions.ClearUserSession(); err != nil {
		t.Fatalf("ClearUserSession failed: %v", err)
	}
	if active, _ := app.Sessions.AdminSession(); !active {
		t.Error("clearing the user session cleared the admin flag too")
	}
}

func TestSessions_ClearAbsentIsNoOp(t *testing.T) {
	app := newTestApp(t)
	if err := app.Sessions.ClearUserSession(); err != nil {
		t.Errorf("ClearUserSession on empty store = %v, want nil", err)
	}
}
