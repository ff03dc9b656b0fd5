package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type registerCmd struct {
	name     string
	email    string
	phone    string
	password string
	confirm  string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "Create a new user and log in" }
func (*registerCmd) Usage() string {
	return `register -name <name> -email <email> -password <password> -confirm <password> [-phone <phone>]

  Creates a new user in the directory and opens a user session for it.

Example:
  nexo register -name "Maria Souza" -email maria@example.com -password s3cret -confirm s3cret
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full name of the user")
	f.StringVar(&c.email, "email", "", "Email address, used to log in")
	f.StringVar(&c.phone, "phone", "", "Phone number (optional)")
	f.StringVar(&c.password, "password", "", "Password")
	f.StringVar(&c.confirm, "confirm", "", "Password confirmation")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	u, err := app.Auth.Register(c.name, c.email, c.phone, c.password, c.confirm)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Welcome, %s. You are now logged in.\n", u.Name)
	return subcommands.ExitSuccess
}

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "Open a user session" }
func (*loginCmd) Usage() string {
	return `login -email <email> -password <password>

  Checks the credentials against the user directory and opens a user session.

Example:
  nexo login -email maria@example.com -password s3cret
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.password, "password", "", "Password")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	u, err := app.Auth.Login(c.email, c.password)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Logged in as %s.\n", u.Name)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "Close the user and admin sessions" }
func (*logoutCmd) Usage() string {
	return `logout

  Closes whichever session is open, user or admin.
`
}

func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if err := app.Auth.Logout(); err != nil {
		return fail(err)
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}

type recoverCmd struct {
	email    string
	password string
	confirm  string
}

func (*recoverCmd) Name() string     { return "recover-password" }
func (*recoverCmd) Synopsis() string { return "Reset the password of an existing user" }
func (*recoverCmd) Usage() string {
	return `recover-password -email <email> -password <new password> -confirm <new password>

  Replaces the password of the user registered with the given email.
`
}

func (c *recoverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email address of the user")
	f.StringVar(&c.password, "password", "", "New password")
	f.StringVar(&c.confirm, "confirm", "", "New password confirmation")
}

func (c *recoverCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if err := app.Auth.RecoverPassword(c.email, c.password, c.confirm); err != nil {
		return fail(err)
	}
	fmt.Println("Password updated.")
	return subcommands.ExitSuccess
}

type adminLoginCmd struct {
	email    string
	password string
}

func (*adminLoginCmd) Name() string     { return "admin" }
func (*adminLoginCmd) Synopsis() string { return "Open an admin console session" }
func (*adminLoginCmd) Usage() string {
	return `admin -email <email> -password <password>

  Opens the admin console session. Credentials are either the built-in
  administrator account or any active directory user with the admin role.

Example:
  nexo admin -email admin@nexo.com -password admin123
`
}

func (c *adminLoginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Admin email address")
	f.StringVar(&c.password, "password", "", "Admin password")
}

func (c *adminLoginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if err := app.Auth.AdminLogin(c.email, c.password); err != nil {
		return fail(err)
	}
	fmt.Println("Admin session open.")
	return subcommands.ExitSuccess
}
