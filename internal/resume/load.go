package resume

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/resume.yaml
var embedded []byte

// Load decodes the embedded dataset. This is the normal startup path; the
// embedded document is validated at build of the release artifact, so a
// failure here is a programmer error surfaced as a regular error anyway.
func Load() (*Store, error) {
	return decode(embedded)
}

// LoadFile decodes a dataset from disk, for the --resume override.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resume file: %w", err)
	}
	store, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return store, nil
}

func decode(data []byte) (*Store, error) {
	var store Store
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("decoding resume data: %w", err)
	}
	for i := range store.Skills {
		if store.Skills[i].Max == 0 {
			store.Skills[i].Max = SkillScaleMax
		}
	}
	if err := store.Validate(); err != nil {
		return nil, err
	}
	return &store, nil
}

// Validate checks the structural invariants the rest of the program relies
// on: a named profile, unique project titles, unique skill subjects, and
// skill values inside the scale. Called on every load path so a bad
// --resume file fails fast instead of rendering garbage.
func (s *Store) Validate() error {
	if s.Profile.Name == "" {
		return fmt.Errorf("profile: name is required")
	}
	if s.Profile.Title == "" {
		return fmt.Errorf("profile: title is required")
	}

	titles := make(map[string]bool, len(s.Projects))
	for i, p := range s.Projects {
		if p.Title == "" {
			return fmt.Errorf("projects[%d]: title is required", i)
		}
		if titles[p.Title] {
			return fmt.Errorf("projects: duplicate title %q", p.Title)
		}
		titles[p.Title] = true
	}

	subjects := make(map[string]bool, len(s.Skills))
	for i, sk := range s.Skills {
		if sk.Subject == "" {
			return fmt.Errorf("skills[%d]: subject is required", i)
		}
		if subjects[sk.Subject] {
			return fmt.Errorf("skills: duplicate subject %q", sk.Subject)
		}
		subjects[sk.Subject] = true
		if sk.Value < 0 || sk.Value > sk.Max {
			return fmt.Errorf("skills: %s value %d outside [0,%d]", sk.Subject, sk.Value, sk.Max)
		}
	}
	return nil
}
