// Package search implements the keyword filter over the resume dataset.
// Matching is case-insensitive substring containment, results keep the
// dataset's original order, and the whole thing is a pure function so the
// interface can call it on every keystroke.
package search

import (
	"strings"

	"folio/internal/resume"
)

// ResultSet holds one query's matches across the three searchable
// categories. Certificates and interests are deliberately not searched.
// A zero-match set with Active() true is a valid result, distinct from
// "no query issued" (Active() false); empty-state messaging depends on
// the difference.
type ResultSet struct {
	Query     string
	Projects  []resume.Project
	Education []resume.EducationEntry
	Skills    []resume.SkillMetric
}

// Active reports whether a search is in effect. Empty and whitespace-only
// queries mean no active search.
func (r ResultSet) Active() bool {
	return r.Query != ""
}

// Empty reports whether the query matched nothing in any category.
func (r ResultSet) Empty() bool {
	return len(r.Projects) == 0 && len(r.Education) == 0 && len(r.Skills) == 0
}

// Total returns the match count across all categories.
func (r ResultSet) Total() int {
	return len(r.Projects) + len(r.Education) + len(r.Skills)
}

// Match filters the store by query. The query is trimmed before use; the
// trimmed form is kept in the result so callers can echo what was searched.
func Match(store *resume.Store, query string) ResultSet {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return ResultSet{}
	}

	q := strings.ToLower(trimmed)
	rs := ResultSet{Query: trimmed}

	for _, p := range store.Projects {
		if projectMatches(p, q) {
			rs.Projects = append(rs.Projects, p)
		}
	}
	for _, e := range store.Education {
		if educationMatches(e, q) {
			rs.Education = append(rs.Education, e)
		}
	}
	for _, sk := range store.Skills {
		if contains(sk.Subject, q) {
			rs.Skills = append(rs.Skills, sk)
		}
	}
	return rs
}

func projectMatches(p resume.Project, q string) bool {
	if contains(p.Title, q) || contains(p.Description, q) {
		return true
	}
	for _, tag := range p.Tech {
		if contains(tag, q) {
			return true
		}
	}
	return false
}

func educationMatches(e resume.EducationEntry, q string) bool {
	if contains(e.Degree, q) || contains(e.School, q) {
		return true
	}
	for _, d := range e.Details {
		if contains(d, q) {
			return true
		}
	}
	return false
}

// contains does the one matching rule used everywhere: case-insensitive
// substring containment. q must already be lowercased.
func contains(field, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}
