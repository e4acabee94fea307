// file: navigation/navigation_test.go
package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

// A logged-out visitor sees the public entries plus Register and Login,
// and no admin entry.
func TestMain_LoggedOut(t *testing.T) {
	entries := Main(false, false)

	assert.Equal(t,
		[]string{"Home", "Gallery", "Videos", "Participate", "Register", "Login"},
		labels(entries))
	for _, e := range entries {
		assert.False(t, e.Action, "logged-out nav has no action entries")
	}
}

// A logged-in non-admin trades Register/Login for Logout.
func TestMain_LoggedInVisitor(t *testing.T) {
	entries := Main(true, false)

	assert.Equal(t,
		[]string{"Home", "Gallery", "Videos", "Participate", "Logout"},
		labels(entries))

	last := entries[len(entries)-1]
	assert.True(t, last.Action, "Logout is an action, not plain navigation")
	assert.NotContains(t, labels(entries), "Admin Dashboard")
}

// An admin additionally sees the dashboard entry.
func TestMain_Admin(t *testing.T) {
	entries := Main(true, true)

	assert.Equal(t,
		[]string{"Home", "Gallery", "Videos", "Participate", "Admin Dashboard", "Logout"},
		labels(entries))
}

// The admin flag without a login never happens through the session
// layer, but the composer still keeps Register/Login in that state.
func TestMain_AdminFlagWithoutLogin(t *testing.T) {
	entries := Main(false, true)
	assert.Contains(t, labels(entries), "Login")
	assert.NotContains(t, labels(entries), "Logout")
}

func TestAdminMenu(t *testing.T) {
	assert.Nil(t, AdminMenu(false))

	menu := AdminMenu(true)
	assert.Equal(t,
		[]string{"Events", "Participants", "Gallery", "Videos", "Users", "System Images"},
		labels(menu))
	for _, e := range menu {
		assert.Contains(t, e.Path, "/admin/")
	}
}
