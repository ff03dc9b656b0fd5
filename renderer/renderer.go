// Package renderer turns core read models into markdown reports. It only
// consumes the store's read contract; nothing here mutates state.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates fs.FS

func init() {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	templates = sub
}

// RenderDashboard renders the user dashboard to a markdown string.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_title":        "dashboard_title.md",
		"dashboard_accounts":     "dashboard_accounts.md",
		"dashboard_transactions": "dashboard_transactions.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// RenderAccounts renders the accounts view to a markdown string.
func RenderAccounts(a *Accounts) string {
	return renderTemplate("accounts", "accounts.md", nil, a)
}

// RenderJournal renders the transaction history to a markdown string.
func RenderJournal(j *Journal) string {
	return renderTemplate("transactions", "transactions.md", nil, j)
}

// RenderUsers renders the admin user table to a markdown string.
func RenderUsers(u *UserTable) string {
	return renderTemplate("users", "users.md", nil, u)
}

// renderTemplate is a generic utility to render a main template that
// depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, readErr := fs.ReadFile(templates, file)
		if readErr != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
