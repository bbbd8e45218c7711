package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"folio/cmd/folio/config"
	"folio/internal/resume"
)

func testStore(t *testing.T) *resume.Store {
	t.Helper()
	store, err := resume.Load()
	if err != nil {
		t.Fatalf("loading embedded dataset: %v", err)
	}
	return store
}

func TestRenderSearchResults(t *testing.T) {
	t.Parallel()
	store := testStore(t)

	out := renderSearchResults(store, "python")
	if !strings.Contains(out, "projects:") || !strings.Contains(out, "skills:") {
		t.Errorf("python should match projects and skills, got:\n%s", out)
	}

	if out := renderSearchResults(store, "   "); out != "empty query\n" {
		t.Errorf("whitespace query should report empty, got %q", out)
	}

	out = renderSearchResults(store, "zzz-no-match")
	if !strings.Contains(out, "0 matches") {
		t.Errorf("no-match query should report zero matches, got %q", out)
	}
}

func TestWriteExport_RoundTrips(t *testing.T) {
	t.Parallel()
	store := testStore(t)

	var buf bytes.Buffer
	if err := writeExport(&buf, store, "json"); err != nil {
		t.Fatalf("json export: %v", err)
	}
	var fromJSON resume.Store
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil {
		t.Fatalf("json export is not valid JSON: %v", err)
	}
	if fromJSON.Profile.Name != store.Profile.Name {
		t.Error("json export lost the profile name")
	}

	buf.Reset()
	if err := writeExport(&buf, store, "yaml"); err != nil {
		t.Fatalf("yaml export: %v", err)
	}
	var fromYAML resume.Store
	if err := yaml.Unmarshal(buf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("yaml export is not valid YAML: %v", err)
	}
	if len(fromYAML.Projects) != len(store.Projects) {
		t.Error("yaml export lost projects")
	}
}

func TestWriteExport_UnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeExport(&buf, testStore(t), "xml"); err == nil {
		t.Fatal("unknown format should be an error")
	}
}

func TestDoctorReport_NeverPrintsTheKey(t *testing.T) {
	t.Parallel()
	store := testStore(t)

	const key = "AIzaSySecretSecretSecret"
	out := doctorReport("/tmp/config.json", config.DefaultConfig(), key, store)
	if strings.Contains(out, key) {
		t.Fatal("doctor must never print the raw key")
	}
	if !strings.Contains(out, "online (Gemini)") {
		t.Error("a present key should report online mode")
	}

	out = doctorReport("/tmp/config.json", config.DefaultConfig(), "", store)
	if !strings.Contains(out, "offline") || !strings.Contains(out, "(not set)") {
		t.Errorf("an absent key should report offline mode, got:\n%s", out)
	}
}
