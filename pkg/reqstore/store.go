// Package reqstore is the file-backed requirement database: a JSON file
// of records keyed by their requirement identifier.
package reqstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Requirement is one record. ID is the natural key; GUID is an internal
// identity assigned once at creation and stable across updates.
type Requirement struct {
	GUID        string    `json:"guid"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rationale   string    `json:"rationale"`
	Keywords    []string  `json:"keywords,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Store holds the full record set in memory between Open and Save.
// Records are never deleted by this system.
type Store struct {
	path    string
	records []*Requirement
	index   map[string]*Requirement
}

type storeFile struct {
	Requirements []*Requirement `json:"requirements"`
}

// Open loads the store at path if the file exists, else starts empty.
func Open(path string) (*Store, error) {
	s := &Store{path: path, index: make(map[string]*Requirement)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open requirement store %s", path)
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "failed to parse requirement store %s", path)
	}
	s.records = file.Requirements
	for _, r := range s.records {
		s.index[r.ID] = r
	}
	return s, nil
}

// Get looks a record up by its requirement identifier.
func (s *Store) Get(id string) (*Requirement, bool) {
	r, ok := s.index[id]
	return r, ok
}

// Upsert updates the record with r.ID in place, or creates it. Returns
// true when a new record was created.
func (s *Store) Upsert(r Requirement) bool {
	now := time.Now().UTC()
	if existing, ok := s.index[r.ID]; ok {
		existing.Title = r.Title
		existing.Description = r.Description
		existing.Rationale = r.Rationale
		existing.Keywords = r.Keywords
		existing.UpdatedAt = now
		return false
	}
	rec := r
	rec.GUID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	s.records = append(s.records, &rec)
	s.index[rec.ID] = &rec
	return true
}

// Len returns the number of records held.
func (s *Store) Len() int { return len(s.records) }

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Save writes the whole store back to its file, creating parent
// directories as needed.
func (s *Store) Save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create store directory %s", dir)
		}
	}
	data, err := json.MarshalIndent(storeFile{Requirements: s.records}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode requirement store")
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write requirement store %s", s.path)
	}
	return nil
}
