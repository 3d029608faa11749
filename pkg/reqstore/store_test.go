package reqstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "requirements.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "requirements.json"))
	if err != nil {
		t.Fatal(err)
	}

	created := s.Upsert(Requirement{ID: "R-100", Title: "Title", Description: "Desc"})
	if !created {
		t.Fatal("first Upsert should create")
	}
	first, ok := s.Get("R-100")
	if !ok || first.GUID == "" {
		t.Fatalf("created record = %+v, %v", first, ok)
	}

	created = s.Upsert(Requirement{ID: "R-100", Title: "New title", Keywords: []string{"Test"}})
	if created {
		t.Fatal("second Upsert should update in place")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}

	updated, _ := s.Get("R-100")
	if updated.Title != "New title" {
		t.Errorf("Title = %q", updated.Title)
	}
	if updated.GUID != first.GUID {
		t.Error("GUID must be stable across updates")
	}
	if updated.CreatedAt != first.CreatedAt {
		t.Error("CreatedAt must be stable across updates")
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && updated.UpdatedAt != updated.CreatedAt {
		t.Error("UpdatedAt should advance or stay equal, never regress")
	}
}

func TestSaveAndReopenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "requirements.json")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Upsert(Requirement{ID: "R-1", Title: "One", Rationale: "Because", Keywords: []string{"Test"}})
	s.Upsert(Requirement{ID: "R-2", Title: "Two"})
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Len() != 2 {
		t.Fatalf("Len = %d, want 2", reopened.Len())
	}
	r, ok := reopened.Get("R-1")
	if !ok || r.Rationale != "Because" || len(r.Keywords) != 1 || r.Keywords[0] != "Test" {
		t.Errorf("R-1 = %+v, %v", r, ok)
	}
}

func TestOpenCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("corrupt store should fail to open")
	}
}
