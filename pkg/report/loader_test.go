package report

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_KeepsOnlyEntriesWithMean(t *testing.T) {
	path := writeFile(t, t.TempDir(), "x-report-full.json", `{
		"Benchmarks": [
			{"FullName": "Suite.Fast", "Statistics": {"Mean": 120.5}},
			{"FullName": "Suite.NoStats"},
			{"FullName": "Suite.NullMean", "Statistics": {"Mean": null}},
			{"FullName": "Suite.Slow", "Statistics": {"Mean": 90210.0}}
		]
	}`)

	set, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(set), set)
	}
	if got := set["Suite.Fast"]; got != 120.5 {
		t.Errorf("Suite.Fast mean = %v, want 120.5", got)
	}
	if got := set["Suite.Slow"]; got != 90210.0 {
		t.Errorf("Suite.Slow mean = %v, want 90210.0", got)
	}
	if _, ok := set["Suite.NoStats"]; ok {
		t.Error("entry without statistics should be skipped")
	}
	if _, ok := set["Suite.NullMean"]; ok {
		t.Error("entry with null mean should be skipped")
	}
}

func TestLoad_KeepsZeroMean(t *testing.T) {
	// A literal 0 mean is present, not missing.
	path := writeFile(t, t.TempDir(), "z-report-full.json",
		`{"Benchmarks": [{"FullName": "Suite.Zero", "Statistics": {"Mean": 0}}]}`)

	set, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := set["Suite.Zero"]; !ok || v != 0 {
		t.Errorf("expected Suite.Zero present with mean 0, got %v (present=%v)", v, ok)
	}
}

func TestLoad_FailsOnMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope-report-full.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_FailsOnMalformedJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad-report-full.json", `{"Benchmarks": [`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestList_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-report-full.json", `{}`)
	writeFile(t, dir, "a-report-full.json", `{}`)
	writeFile(t, dir, "notes.txt", "ignore me")
	writeFile(t, dir, "c-report.json", `{}`)
	if err := os.Mkdir(filepath.Join(dir, "sub-report-full.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	names, err := List(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a-report-full.json", "b-report-full.json"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestList_FailsOnMissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
