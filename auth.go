package nexo

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Auth layers the login rules on top of the directory and the session
// manager. There is no cryptography here: credentials are compared in plain
// text, which is all this demo store promises.
//
// Auth is also the place where the dual-session contract is honored: every
// successful login clears the other session type, so at most one of the
// user session and the admin session is active.
type Auth struct {
	cfg       Config
	directory *Directory
	sessions  *Sessions
	log       *logrus.Logger
}

func NewAuth(cfg Config, directory *Directory, sessions *Sessions, log *logrus.Logger) *Auth {
	return &Auth{cfg: cfg, directory: directory, sessions: sessions, log: log}
}

// Login authenticates against the directory. It returns ErrBadCredentials
// when no user matches the email/password pair, and ErrUserDisabled when
// the matching user was deactivated by an administrator. On success the
// user session holds a snapshot of the user and the admin session is
// cleared.
func (a *Auth) Login(email, password string) (User, error) {
	users, err := a.directory.Users()
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Email != email || u.Password != password {
			continue
		}
		if !u.Active {
			return User{}, ErrUserDisabled
		}
		if err := a.sessions.SetUserSession(u); err != nil {
			return User{}, err
		}
		if err := a.sessions.SetAdminSession(false); err != nil {
			return User{}, err
		}
		a.log.WithField("email", email).Debug("user logged in")
		return u, nil
	}
	return User{}, ErrBadCredentials
}

// AdminLogin opens an admin console session. It accepts the built-in
// credentials from the configuration, or any active directory user carrying
// the admin role with a matching password. On success the user session is
// cleared.
func (a *Auth) AdminLogin(email, password string) error {
	granted := email == a.cfg.AdminEmail && password == a.cfg.AdminPassword
	if !granted {
		u, ok, err := a.directory.FindByEmail(email)
		if err != nil {
			return err
		}
		granted = ok && u.Password == password && u.IsAdmin() && u.Active
	}
	if !granted {
		return ErrBadCredentials
	}
	if err := a.sessions.SetAdminSession(true); err != nil {
		return err
	}
	if err := a.sessions.ClearUserSession(); err != nil {
		return err
	}
	a.log.WithField("email", email).Debug("admin logged in")
	return nil
}

// Register creates an active role-user account and logs it in. The new
// user starts with the payment and onboarding steps pending.
func (a *Auth) Register(name, email, phone, password, confirm string) (User, error) {
	if password != confirm {
		return User{}, ErrPasswordMismatch
	}
	u := NewUser(name, email, phone, password)
	if err := a.directory.Create(u); err != nil {
		return User{}, err
	}
	if err := a.sessions.SetUserSession(u); err != nil {
		return User{}, err
	}
	if err := a.sessions.SetAdminSession(false); err != nil {
		return User{}, err
	}
	return u, nil
}

// RecoverPassword resets the password of the account registered under
// email. It returns ErrNotFound for an unknown email.
func (a *Auth) RecoverPassword(email, newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	u, ok, err := a.directory.FindByEmail(email)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("email %q: %w", email, ErrNotFound)
	}
	return a.directory.ResetPassword(u.ID, newPassword)
}

// Logout clears both session types.
func (a *Auth) Logout() error {
	if err := a.sessions.ClearUserSession(); err != nil {
		return err
	}
	return a.sessions.SetAdminSession(false)
}

// CompletePayment marks the user as paid and refreshes the session
// snapshot when that user is logged in.
func (a *Auth) CompletePayment(id string) error {
	return a.completeStep(id, func(u *User) { u.HasPaid = true })
}

// CompleteOnboarding marks the onboarding flow as finished and refreshes
// the session snapshot when that user is logged in.
func (a *Auth) CompleteOnboarding(id string) error {
	return a.completeStep(id, func(u *User) { u.OnboardingComplete = true })
}

func (a *Auth) completeStep(id string, fn func(*User)) error {
	if err := a.directory.mutate(id, fn); err != nil {
		return err
	}
	current, ok, err := a.sessions.UserSession()
	if err != nil || !ok || current.ID != id {
		return err
	}
	updated, ok, err := a.directory.Find(id)
	if err != nil || !ok {
		return err
	}
	return a.sessions.SetUserSession(updated)
}
