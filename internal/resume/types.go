// Package resume defines the immutable portfolio dataset: the profile,
// projects, education history, certificates, skill metrics, and interests
// that every other component reads. The dataset is loaded once at startup
// and never mutated afterwards; callers share the same *Store by pointer
// without locking.
package resume

// Link is a labeled external URL (GitHub, LinkedIn, personal site).
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Contact holds the ways to reach the profile owner.
type Contact struct {
	Email    string `yaml:"email" json:"email"`
	Phone    string `yaml:"phone" json:"phone"`
	Location string `yaml:"location" json:"location"`
	Links    []Link `yaml:"links,omitempty" json:"links,omitempty"`
}

// Profile is the singleton identity block shown on the landing view.
type Profile struct {
	Name    string  `yaml:"name" json:"name"`
	Title   string  `yaml:"title" json:"title"`
	Summary string  `yaml:"summary" json:"summary"`
	Contact Contact `yaml:"contact" json:"contact"`
}

// Project is one portfolio entry. Titles are unique within the list and
// list order is both display order and search-iteration order.
type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Type        string   `yaml:"type" json:"type"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech" json:"tech"`
}

// EducationEntry is one schooling record, newest first.
type EducationEntry struct {
	Degree  string   `yaml:"degree" json:"degree"`
	School  string   `yaml:"school" json:"school"`
	Years   string   `yaml:"years" json:"years"`
	Score   string   `yaml:"score" json:"score"`
	Details []string `yaml:"details,omitempty" json:"details,omitempty"`
}

// Certificate is a named credential with a short icon identifier used by
// the presentation layer.
type Certificate struct {
	Name string `yaml:"name" json:"name"`
	Icon string `yaml:"icon" json:"icon"`
}

// SkillScaleMax is the fixed upper bound of every skill metric.
const SkillScaleMax = 100

// SkillMetric is one bar on the skills chart. Subjects are unique and the
// list order groups related domains together (AI, then systems, then
// backend, then frontend), so it must be preserved when rendering.
type SkillMetric struct {
	Subject string `yaml:"subject" json:"subject"`
	Value   int    `yaml:"value" json:"value"`
	Max     int    `yaml:"max,omitempty" json:"max,omitempty"`
}

// Store is the complete read-only dataset.
type Store struct {
	Profile      Profile          `yaml:"profile" json:"profile"`
	Projects     []Project        `yaml:"projects" json:"projects"`
	Education    []EducationEntry `yaml:"education" json:"education"`
	Certificates []Certificate    `yaml:"certificates" json:"certificates"`
	Skills       []SkillMetric    `yaml:"skills" json:"skills"`
	Interests    []string         `yaml:"interests" json:"interests"`
}
