package nav

import "testing"

// check asserts the one invariant everything else leans on: a non-empty
// query and the Search view always appear together.
func check(t *testing.T, s State) {
	t.Helper()
	if (s.Query != "") != (s.Active == ViewSearch) {
		t.Fatalf("invariant violated: query=%q active=%s", s.Query, s.Active)
	}
}

func TestNewState(t *testing.T) {
	t.Parallel()

	s := NewState()
	if s.Active != ViewProfile || s.Query != "" {
		t.Errorf("fresh state should be Profile with no query, got %+v", s)
	}
	check(t, s)
}

func TestSetQuery_ForcesSearchView(t *testing.T) {
	t.Parallel()

	s := NewState().SetQuery("alpha")
	if s.Active != ViewSearch {
		t.Errorf("non-empty query should force Search, got %s", s.Active)
	}
	if s.Query != "alpha" {
		t.Errorf("query should be kept, got %q", s.Query)
	}
	check(t, s)
}

func TestSetQuery_ClearReturnsToProfile(t *testing.T) {
	t.Parallel()

	s := NewState().Navigate(ViewSkills).SetQuery("alpha").SetQuery("")
	if s.Active != ViewProfile {
		t.Errorf("clearing the query should return to Profile, got %s", s.Active)
	}
	check(t, s)
}

func TestSetQuery_WhitespaceCountsAsEmpty(t *testing.T) {
	t.Parallel()

	s := NewState().SetQuery("   ")
	if s.Active != ViewProfile || s.Query != "" {
		t.Errorf("whitespace-only query should behave like an empty one, got %+v", s)
	}
	check(t, s)
}

func TestNavigate_ClearsActiveSearch(t *testing.T) {
	t.Parallel()

	s := NewState().SetQuery("alpha").Navigate(ViewProjects)
	if s.Active != ViewProjects {
		t.Errorf("nav action should win, got %s", s.Active)
	}
	if s.Query != "" {
		t.Errorf("nav action should clear the query, got %q", s.Query)
	}
	check(t, s)
}

func TestNavigate_SearchIsNotADirectTarget(t *testing.T) {
	t.Parallel()

	s := NewState().Navigate(ViewSearch)
	if s.Active != ViewProfile {
		t.Errorf("navigating to Search without a query should land on Profile, got %s", s.Active)
	}
	check(t, s)

	for _, v := range NavTargets {
		if v == ViewSearch {
			t.Error("NavTargets must not include Search")
		}
	}
}

func TestTransitionsKeepInvariant(t *testing.T) {
	t.Parallel()

	s := NewState()
	steps := []func(State) State{
		func(s State) State { return s.SetQuery("go") },
		func(s State) State { return s.SetQuery("gop") },
		func(s State) State { return s.Navigate(ViewTerminal) },
		func(s State) State { return s.SetQuery("kafka") },
		func(s State) State { return s.SetQuery("") },
		func(s State) State { return s.Navigate(ViewEducation) },
	}
	for _, step := range steps {
		s = step(s)
		check(t, s)
	}
	if s.Active != ViewEducation {
		t.Errorf("final view should be Education, got %s", s.Active)
	}
}

func TestViewString(t *testing.T) {
	t.Parallel()

	want := map[View]string{
		ViewProfile:   "Profile",
		ViewProjects:  "Projects",
		ViewEducation: "Education",
		ViewSkills:    "Skills",
		ViewTerminal:  "Terminal",
		ViewSearch:    "Search",
		View(99):      "Unknown",
	}
	for v, name := range want {
		if v.String() != name {
			t.Errorf("View(%d).String() = %q, want %q", v, v.String(), name)
		}
	}
}
