package resume

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	t.Parallel()

	store, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, store.Profile.Name)
	assert.NotEmpty(t, store.Profile.Title)
	assert.NotEmpty(t, store.Profile.Contact.Email)
	assert.NotEmpty(t, store.Projects)
	assert.NotEmpty(t, store.Education)
	assert.NotEmpty(t, store.Skills)

	for _, sk := range store.Skills {
		assert.Equal(t, SkillScaleMax, sk.Max, "skill %s should use the default scale", sk.Subject)
	}

	// The scripted assistant replies name these four; renaming them in the
	// dataset breaks that coupling.
	subjects := store.SkillSubjects()
	for _, want := range []string{"Python", "React", "Node.js", "Transformer Models"} {
		assert.Contains(t, subjects, want)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.yaml")
	doc := `
profile:
  name: Test Person
  title: Engineer
projects:
  - title: Alpha System
    type: Demo
    description: A demo project.
    tech: [X, Y]
skills:
  - subject: Go
    value: 80
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	store, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Person", store.Profile.Name)
	require.Len(t, store.Projects, 1)
	assert.Equal(t, "Alpha System", store.Projects[0].Title)
	assert.Equal(t, SkillScaleMax, store.Skills[0].Max)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Store {
		return &Store{
			Profile: Profile{Name: "A", Title: "B"},
			Projects: []Project{
				{Title: "One"},
				{Title: "Two"},
			},
			Skills: []SkillMetric{
				{Subject: "Go", Value: 50, Max: 100},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Store)
		wantErr string
	}{
		{
			name:   "valid store passes",
			mutate: func(*Store) {},
		},
		{
			name:    "missing profile name",
			mutate:  func(s *Store) { s.Profile.Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "missing profile title",
			mutate:  func(s *Store) { s.Profile.Title = "" },
			wantErr: "title is required",
		},
		{
			name:    "duplicate project title",
			mutate:  func(s *Store) { s.Projects[1].Title = "One" },
			wantErr: `duplicate title "One"`,
		},
		{
			name:    "empty project title",
			mutate:  func(s *Store) { s.Projects[0].Title = "" },
			wantErr: "title is required",
		},
		{
			name:    "duplicate skill subject",
			mutate:  func(s *Store) { s.Skills = append(s.Skills, SkillMetric{Subject: "Go", Value: 10, Max: 100}) },
			wantErr: `duplicate subject "Go"`,
		},
		{
			name:    "skill value above scale",
			mutate:  func(s *Store) { s.Skills[0].Value = 101 },
			wantErr: "outside [0,100]",
		},
		{
			name:    "negative skill value",
			mutate:  func(s *Store) { s.Skills[0].Value = -1 },
			wantErr: "outside [0,100]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := valid()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestContextBlob(t *testing.T) {
	t.Parallel()

	store, err := Load()
	require.NoError(t, err)

	blob := store.ContextBlob()
	assert.Contains(t, blob, store.Profile.Name)
	assert.Contains(t, blob, store.Profile.Contact.Email)
	for _, p := range store.Projects {
		assert.Contains(t, blob, p.Title)
	}
	for _, sk := range store.Skills {
		assert.Contains(t, blob, sk.Subject)
	}

	// Deterministic for the same store.
	assert.Equal(t, blob, store.ContextBlob())
}
