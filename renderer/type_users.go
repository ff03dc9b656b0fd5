package renderer

import "github.com/nexofin/nexo"

// UserTable is the view model of the admin console user list.
type UserTable struct {
	Rows   []UserRow
	Total  int
	Active int
}

// UserRow is one formatted directory line.
type UserRow struct {
	ID     string
	Name   string
	Email  string
	Role   string
	Status string
}

// NewUserTable builds the admin user table view.
func NewUserTable(users []nexo.User) *UserTable {
	t := &UserTable{Total: len(users)}
	for _, u := range users {
		status := "active"
		if !u.Active {
			status = "disabled"
		} else {
			t.Active++
		}
		t.Rows = append(t.Rows, UserRow{
			ID:     u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Role:   string(u.Role),
			Status: status,
		})
	}
	return t
}
