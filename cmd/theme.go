package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nexofin/nexo"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "Show the current color theme" }
func (*themeCmd) Usage() string {
	return `theme

  Prints the primary and secondary theme colors. When no theme has been
  saved, the default purple palette is shown.
`
}

func (*themeCmd) SetFlags(*flag.FlagSet) {}

func (c *themeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	theme, err := app.Themes.Theme()
	if err != nil {
		return fail(err)
	}
	fmt.Printf("primary:   %s\nsecondary: %s\n", theme.Primary, theme.Secondary)
	return subcommands.ExitSuccess
}

type setThemeCmd struct {
	primary   string
	secondary string
}

func (*setThemeCmd) Name() string     { return "set-theme" }
func (*setThemeCmd) Synopsis() string { return "Save a color theme" }
func (*setThemeCmd) Usage() string {
	return `set-theme -primary <color> -secondary <color>

  Saves the theme colors. Colors are kept as given; hex values like
  "#6d28d9" are the usual form.

Example:
  nexo set-theme -primary "#0f766e" -secondary "#134e4a"
`
}

func (c *setThemeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.primary, "primary", nexo.DefaultTheme.Primary, "Primary color")
	f.StringVar(&c.secondary, "secondary", nexo.DefaultTheme.Secondary, "Secondary color")
}

func (c *setThemeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := openApp()
	if err != nil {
		return fail(err)
	}
	theme := nexo.AppTheme{Primary: c.primary, Secondary: c.secondary}
	if err := app.Themes.SetTheme(theme); err != nil {
		return fail(err)
	}
	fmt.Println("Theme saved.")
	return subcommands.ExitSuccess
}
