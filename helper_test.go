package nexo

import "testing"

// newTestApp wires the application over an in-memory store with logging
// silenced, using the built-in admin credentials.
func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := Config{
		AdminEmail:    "admin@nexo.com",
		AdminPassword: "admin123",
		LogLevel:      "panic",
	}
	return NewApp(cfg, NewMemStore())
}

// mustCreate adds a user to the directory or fails the test.
func mustCreate(t *testing.T, app *App, u User) {
	t.Helper()
	if err := app.Directory.Create(u); err != nil {
		t.Fatalf("Create(%q) failed: %v", u.Email, err)
	}
}
