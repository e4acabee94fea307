// Package navigation builds the set of visible navigation entries as a
// pure function of the login state. Rendering (responsive collapse,
// icons) is a template concern; this package only decides what appears
// and in what order.
// File: navigation/navigation.go
package navigation

// Entry is one visible navigation item. Action entries trigger a
// side effect (logout) instead of plain navigation.
type Entry struct {
	Label  string
	Path   string
	Action bool
}

// Main returns the ordered top-level entries for the given state:
// - Home, Gallery, Videos, Participate always
// - Admin Dashboard when the admin flag is set, right after the fixed entries
// - Register and Login when logged out, always last
// - Logout (an action link) when logged in, always last
func Main(loggedIn, isAdmin bool) []Entry {
	entries := []Entry{
		{Label: "Home", Path: "/"},
		{Label: "Gallery", Path: "/gallery"},
		{Label: "Videos", Path: "/videos"},
		{Label: "Participate", Path: "/participate"},
	}

	if isAdmin {
		entries = append(entries, Entry{Label: "Admin Dashboard", Path: "/admin"})
	}

	if loggedIn {
		entries = append(entries, Entry{Label: "Logout", Path: "/logout", Action: true})
	} else {
		entries = append(entries,
			Entry{Label: "Register", Path: "/register"},
			Entry{Label: "Login", Path: "/login"},
		)
	}
	return entries
}

// AdminMenu returns the fixed admin submenu, or nothing when the
// visitor is not an admin.
func AdminMenu(isAdmin bool) []Entry {
	if !isAdmin {
		return nil
	}
	return []Entry{
		{Label: "Events", Path: "/admin/events"},
		{Label: "Participants", Path: "/admin/participants"},
		{Label: "Gallery", Path: "/admin/gallery"},
		{Label: "Videos", Path: "/admin/videos"},
		{Label: "Users", Path: "/admin/users"},
		{Label: "System Images", Path: "/admin/system-images"},
	}
}
