package profile

import "testing"

func TestRosterImportSyncCode(t *testing.T) {
	r := NewRoster()

	code := EncodeSyncCode(&Profile{
		Name:         "Asha",
		ClassSection: "Grade 9A",
		Progress:     50,
		Streak:       4,
		Scores:       Scores{"communication": 70},
	})
	entry, err := r.ImportSyncCode(code)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if entry.Name != "Asha" {
		t.Errorf("name = %q, want %q", entry.Name, "Asha")
	}
	if entry.Status != StatusActive {
		t.Errorf("status = %q, want %q", entry.Status, StatusActive)
	}
	if r.Len() != 1 {
		t.Errorf("len = %d, want 1", r.Len())
	}
}

func TestRosterImportOverwritesSameName(t *testing.T) {
	r := NewRoster()

	first := EncodeSyncCode(&Profile{Name: "Ravi", Progress: 25, Scores: Scores{}})
	if _, err := r.ImportSyncCode(first); err != nil {
		t.Fatalf("import first: %v", err)
	}
	second := EncodeSyncCode(&Profile{Name: "Ravi", Progress: 100, Scores: Scores{}})
	entry, err := r.ImportSyncCode(second)
	if err != nil {
		t.Fatalf("import second: %v", err)
	}

	if r.Len() != 1 {
		t.Errorf("len = %d, want 1 after re-import", r.Len())
	}
	if entry.Progress != 100 {
		t.Errorf("progress = %d, want 100", entry.Progress)
	}
	if entry.Status != StatusCompleted {
		t.Errorf("status = %q, want %q", entry.Status, StatusCompleted)
	}
}

func TestRosterImportMalformedLeavesRosterUnchanged(t *testing.T) {
	r := NewRoster()
	if _, err := r.ImportSyncCode(EncodeSyncCode(&Profile{Name: "Mei", Scores: Scores{}})); err != nil {
		t.Fatalf("import: %v", err)
	}

	if _, err := r.ImportSyncCode("not a sync code"); err == nil {
		t.Error("expected error for malformed code")
	}
	if r.Len() != 1 {
		t.Errorf("len = %d, want 1 after failed import", r.Len())
	}
}

func TestRosterEntriesSortedByName(t *testing.T) {
	r := NewRoster()
	for _, name := range []string{"zoe", "Asha", "mei"} {
		code := EncodeSyncCode(&Profile{Name: name, Scores: Scores{}})
		if _, err := r.ImportSyncCode(code); err != nil {
			t.Fatalf("import %s: %v", name, err)
		}
	}

	entries := r.Entries()
	want := []string{"Asha", "mei", "zoe"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestRosterAverageProgress(t *testing.T) {
	r := NewRoster()
	if got := r.AverageProgress(); got != 0 {
		t.Errorf("empty roster average = %d, want 0", got)
	}

	for name, progress := range map[string]int{"a": 40, "b": 60, "c": 75} {
		code := EncodeSyncCode(&Profile{Name: name, Progress: progress, Scores: Scores{}})
		if _, err := r.ImportSyncCode(code); err != nil {
			t.Fatalf("import: %v", err)
		}
	}
	if got := r.AverageProgress(); got != 58 {
		t.Errorf("average = %d, want 58", got)
	}
}

func TestRosterRemove(t *testing.T) {
	r := NewRoster()
	code := EncodeSyncCode(&Profile{Name: "Asha", Scores: Scores{}})
	if _, err := r.ImportSyncCode(code); err != nil {
		t.Fatalf("import: %v", err)
	}

	r.Remove("Asha")
	if r.Len() != 0 {
		t.Errorf("len = %d, want 0", r.Len())
	}
	r.Remove("Asha") // idempotent
}
