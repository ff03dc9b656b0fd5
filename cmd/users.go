package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nexofin/nexo"
	"github.com/nexofin/nexo/renderer"
)

type usersCmd struct{}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "List all users in the directory" }
func (*usersCmd) Usage() string {
	return `users

  Prints the user directory as a table. Requires an admin session.
`
}

func (*usersCmd) SetFlags(*flag.FlagSet) {}

func (c *usersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if err := requireAdmin(app); err != nil {
		return fail(err)
	}
	users, err := app.Directory.Users()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderUsers(renderer.NewUserTable(users)))
	return subcommands.ExitSuccess
}

type createUserCmd struct {
	name     string
	email    string
	phone    string
	password string
	role     string
}

func (*createUserCmd) Name() string     { return "create-user" }
func (*createUserCmd) Synopsis() string { return "Add a user to the directory" }
func (*createUserCmd) Usage() string {
	return `create-user -name <name> -email <email> -password <password> [-phone <phone>] [-role user|admin]

  Adds a user to the directory without opening a session for it.
  Requires an admin session.
`
}

func (c *createUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full name of the user")
	f.StringVar(&c.email, "email", "", "Email address, used to log in")
	f.StringVar(&c.phone, "phone", "", "Phone number (optional)")
	f.StringVar(&c.password, "password", "", "Password")
	f.StringVar(&c.role, "role", "user", "Role, either 'user' or 'admin'")
}

func (c *createUserCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if err := requireAdmin(app); err != nil {
		return fail(err)
	}
	role, ok := nexo.ParseRole(c.role)
	if !ok {
		return fail(fmt.Errorf("unknown role %q, want 'user' or 'admin'", c.role))
	}
	u := nexo.NewUser(c.name, c.email, c.phone, c.password)
	u.Role = role
	if err := app.Directory.Create(u); err != nil {
		return fail(err)
	}
	fmt.Printf("Created user %s (%s).\n", u.Name, u.ID)
	return subcommands.ExitSuccess
}

type toggleUserCmd struct {
	id string
}

func (*toggleUserCmd) Name() string     { return "toggle-user" }
func (*toggleUserCmd) Synopsis() string { return "Enable or disable a user" }
func (*toggleUserCmd) Usage() string {
	return `toggle-user -id <user id>

  Flips the active flag of a user. Disabled users cannot log in.
  Requires an admin session.
`
}

func (c *toggleUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the user")
}

func (c *toggleUserCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if err := requireAdmin(app); err != nil {
		return fail(err)
	}
	if err := app.Directory.ToggleActive(c.id); err != nil {
		return fail(err)
	}
	u, ok, err := app.Directory.Find(c.id)
	if err != nil || !ok {
		fmt.Println("User toggled.")
		return subcommands.ExitSuccess
	}
	if u.Active {
		fmt.Printf("User %s is now active.\n", u.Name)
	} else {
		fmt.Printf("User %s is now disabled.\n", u.Name)
	}
	return subcommands.ExitSuccess
}

type setRoleCmd struct {
	id   string
	role string
}

func (*setRoleCmd) Name() string     { return "set-role" }
func (*setRoleCmd) Synopsis() string { return "Change the role of a user" }
func (*setRoleCmd) Usage() string {
	return `set-role -id <user id> -role user|admin

  Changes the role of a user. Admin users can open the admin console with
  their own credentials. Requires an admin session.
`
}

func (c *setRoleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the user")
	f.StringVar(&c.role, "role", "", "New role, either 'user' or 'admin'")
}

func (c *setRoleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if err := requireAdmin(app); err != nil {
		return fail(err)
	}
	role, ok := nexo.ParseRole(c.role)
	if !ok {
		return fail(fmt.Errorf("unknown role %q, want 'user' or 'admin'", c.role))
	}
	if err := app.Directory.ChangeRole(c.id, role); err != nil {
		return fail(err)
	}
	fmt.Printf("Role set to %s.\n", role)
	return subcommands.ExitSuccess
}

type resetPasswordCmd struct {
	id       string
	password string
}

func (*resetPasswordCmd) Name() string     { return "reset-password" }
func (*resetPasswordCmd) Synopsis() string { return "Replace the password of a user" }
func (*resetPasswordCmd) Usage() string {
	return `reset-password -id <user id> -password <new password>

  Replaces the password of a user without asking for the old one.
  Requires an admin session.
`
}

func (c *resetPasswordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the user")
	f.StringVar(&c.password, "password", "", "New password")
}

func (c *resetPasswordCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if err := requireAdmin(app); err != nil {
		return fail(err)
	}
	if err := app.Directory.ResetPassword(c.id, c.password); err != nil {
		return fail(err)
	}
	fmt.Println("Password updated.")
	return subcommands.ExitSuccess
}

type deleteUserCmd struct {
	id string
}

func (*deleteUserCmd) Name() string     { return "delete-user" }
func (*deleteUserCmd) Synopsis() string { return "Remove a user from the directory" }
func (*deleteUserCmd) Usage() string {
	return `delete-user -id <user id>

  Removes a user from the directory and closes its session if it had one.
  Requires an admin session.
`
}

func (c *deleteUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the user")
}

func (c *deleteUserCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	if err := requireAdmin(app); err != nil {
		return fail(err)
	}
	if err := app.Directory.Delete(c.id); err != nil {
		return fail(err)
	}
	fmt.Println("User deleted.")
	return subcommands.ExitSuccess
}
