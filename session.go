package nexo

// Sessions tracks who is currently authenticated. It is two orthogonal
// pieces of state under independent keys: a full snapshot of the logged-in
// user, and a separate admin-session flag. The manager performs no
// cross-validation between the two; the auth layer is responsible for
// clearing one before setting the other.
type Sessions struct {
	store Store
}

func NewSessions(store Store) *Sessions {
	return &Sessions{store: store}
}

// UserSession returns the stored user snapshot, or ok=false when nobody is
// logged in. The snapshot is what was persisted at login time, not a live
// reference into the directory.
func (s *Sessions) UserSession() (User, bool, error) {
	return loadRecord[User](s.store, KeyUserSession)
}

// SetUserSession persists the user snapshot verbatim.
func (s *Sessions) SetUserSession(u User) error {
	return saveRecord(s.store, KeyUserSession, u)
}

// ClearUserSession removes the user session. Clearing an absent session is
// a no-op.
func (s *Sessions) ClearUserSession() error {
	return s.store.Remove(KeyUserSession)
}

// AdminSession reports whether an admin console session is active. An
// absent key reads as false.
func (s *Sessions) AdminSession() (bool, error) {
	active, _, err := loadRecord[bool](s.store, KeyAdminSession)
	return active, err
}

// SetAdminSession sets or clears the admin-session flag.
func (s *Sessions) SetAdminSession(active bool) error {
	return saveRecord(s.store, KeyAdminSession, active)
}
