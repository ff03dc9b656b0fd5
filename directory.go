package nexo

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Directory is the CRUD surface over the user collection. Every operation
// reads the whole collection, mutates an in-memory copy and writes it back.
type Directory struct {
	store    Store
	sessions *Sessions
	log      *logrus.Logger
}

// NewDirectory returns a directory over the given store. Deleting a user
// cascades into the session manager, which is why it is a dependency here.
func NewDirectory(store Store, sessions *Sessions, log *logrus.Logger) *Directory {
	return &Directory{store: store, sessions: sessions, log: log}
}

// Users returns all directory records in insertion order. An absent
// collection reads as empty.
func (d *Directory) Users() ([]User, error) {
	users, _, err := loadRecord[[]User](d.store, KeyUsers)
	return users, err
}

// Create appends a user to the directory. It fails with ErrDuplicateEmail
// when the email is already registered (case-sensitive exact match). This
// is the only place email uniqueness is checked.
func (d *Directory) Create(u User) error {
	users, err := d.Users()
	if err != nil {
		return err
	}
	for _, existing := range users {
		if existing.Email == u.Email {
			return fmt.Errorf("create user %q: %w", u.Email, ErrDuplicateEmail)
		}
	}
	users = append(users, u)
	if err := saveRecord(d.store, KeyUsers, users); err != nil {
		return err
	}
	d.log.WithFields(logrus.Fields{"id": u.ID, "email": u.Email}).Debug("user created")
	return nil
}

// mutate applies fn to the user with the given id and writes the collection
// back. It returns ErrNotFound, leaving the store unchanged, when the id is
// not in the directory.
func (d *Directory) mutate(id string, fn func(*User)) error {
	users, err := d.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			fn(&users[i])
			return saveRecord(d.store, KeyUsers, users)
		}
	}
	return fmt.Errorf("user %q: %w", id, ErrNotFound)
}

// ToggleActive flips the active flag of the user.
func (d *Directory) ToggleActive(id string) error {
	return d.mutate(id, func(u *User) { u.Active = !u.Active })
}

// ChangeRole overwrites the role of the user. No uniqueness or validity
// check happens on update paths.
func (d *Directory) ChangeRole(id string, role Role) error {
	return d.mutate(id, func(u *User) { u.Role = role })
}

// ResetPassword overwrites the password in place. Any minimum-length policy
// is the caller's to enforce; the directory applies none.
func (d *Directory) ResetPassword(id, newPassword string) error {
	return d.mutate(id, func(u *User) { u.Password = newPassword })
}

// Update replaces the stored record with u, matched by id.
func (d *Directory) Update(u User) error {
	return d.mutate(u.ID, func(stored *User) { *stored = u })
}

// Delete removes the user from the directory. When the active user session
// belongs to the deleted id, the session is cleared as well; the admin
// session flag is left untouched.
func (d *Directory) Delete(id string) error {
	users, err := d.Users()
	if err != nil {
		return err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if err := saveRecord(d.store, KeyUsers, kept); err != nil {
		return err
	}
	current, ok, err := d.sessions.UserSession()
	if err != nil {
		return err
	}
	if ok && current.ID == id {
		if err := d.sessions.ClearUserSession(); err != nil {
			return err
		}
		d.log.WithField("id", id).Debug("session cleared for deleted user")
	}
	return nil
}

// Find returns the user with the given id.
func (d *Directory) Find(id string) (User, bool, error) {
	users, err := d.Users()
	if err != nil {
		return User{}, false, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return User{}, false, nil
}

// FindByEmail returns the user with the given email (case-sensitive exact
// match), as the auth flows look users up.
func (d *Directory) FindByEmail(email string) (User, bool, error) {
	users, err := d.Users()
	if err != nil {
		return User{}, false, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return User{}, false, nil
}
