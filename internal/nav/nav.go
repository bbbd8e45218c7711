// Package nav holds the active-view state machine. Transitions are pure
// functions on a small value type so the coupling between searching and
// view selection can be tested without a rendering environment.
package nav

import "strings"

// View identifies which page is active. The set is closed; the assistant
// panel is an overlay, not a view.
type View int

const (
	ViewProfile View = iota
	ViewProjects
	ViewEducation
	ViewSkills
	ViewTerminal
	ViewSearch
)

// String returns the display name for each view.
func (v View) String() string {
	names := []string{"Profile", "Projects", "Education", "Skills", "Terminal", "Search"}
	if int(v) < len(names) {
		return names[v]
	}
	return "Unknown"
}

// NavTargets lists the views reachable by direct navigation, in menu order.
// Search is absent: it is entered only by typing a query.
var NavTargets = []View{ViewProfile, ViewProjects, ViewEducation, ViewSkills, ViewTerminal}

// State couples the active view with the search query. The invariant is
// that Query is non-empty exactly when Active is ViewSearch; both
// transitions below maintain it.
type State struct {
	Active View
	Query  string
}

// NewState starts on the profile with no active search.
func NewState() State {
	return State{Active: ViewProfile}
}

// Navigate is an explicit view selection. It clears any in-flight query so
// the next update does not bounce back into Search. ViewSearch is not a
// valid direct target; with the query cleared it degrades to the profile.
func (s State) Navigate(v View) State {
	if v == ViewSearch {
		v = ViewProfile
	}
	return State{Active: v, Query: ""}
}

// SetQuery reflects search-input typing. A non-empty query forces the
// Search view; clearing it returns to the profile. Whitespace-only input
// counts as empty.
func (s State) SetQuery(q string) State {
	if strings.TrimSpace(q) == "" {
		return State{Active: ViewProfile, Query: ""}
	}
	return State{Active: ViewSearch, Query: q}
}

// Searching reports whether a search is in effect.
func (s State) Searching() bool {
	return s.Active == ViewSearch
}
