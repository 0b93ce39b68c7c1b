package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"campus-booking-backend/internal/model"
)

// document is the single persisted JSON value: four collections, each a
// mapping from generated id to record.
type document struct {
	Users        map[string]model.StoredUser `json:"users"`
	Universities map[string]model.University `json:"universities"`
	Rooms        map[string]model.Room       `json:"rooms"`
	Times        map[string]model.Time       `json:"times"`
}

func emptyDocument() document {
	return document{
		Users:        make(map[string]model.StoredUser),
		Universities: make(map[string]model.University),
		Rooms:        make(map[string]model.Room),
		Times:        make(map[string]model.Time),
	}
}

// jsonStore implements Store over a single JSON file. Every Save rewrites
// the whole document; a crash mid-Save never leaves a partial file because
// the write goes to a temp file that is renamed into place.
type jsonStore struct {
	path string
	doc  document
}

// Open loads the document at path, or starts with an empty one when the
// file does not exist yet.
func Open(path string) (Store, error) {
	s := &jsonStore{path: path, doc: emptyDocument()}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("document store %s does not exist yet, starting empty", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document store %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("failed to parse document store %s: %w", path, err)
	}

	// Collections absent from the file behave as empty.
	if s.doc.Users == nil {
		s.doc.Users = make(map[string]model.StoredUser)
	}
	if s.doc.Universities == nil {
		s.doc.Universities = make(map[string]model.University)
	}
	if s.doc.Rooms == nil {
		s.doc.Rooms = make(map[string]model.Room)
	}
	if s.doc.Times == nil {
		s.doc.Times = make(map[string]model.Time)
	}
	return s, nil
}

func (s *jsonStore) Save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace document store %s: %w", s.path, err)
	}
	return nil
}

func (s *jsonStore) User(id string) (model.StoredUser, bool) {
	u, ok := s.doc.Users[id]
	return u, ok
}

func (s *jsonStore) Users() []model.StoredUser {
	out := make([]model.StoredUser, 0, len(s.doc.Users))
	for _, u := range s.doc.Users {
		out = append(out, u)
	}
	return out
}

func (s *jsonStore) PutUser(u model.StoredUser) { s.doc.Users[u.ID] = u }

func (s *jsonStore) DeleteUser(id string) { delete(s.doc.Users, id) }

func (s *jsonStore) University(id string) (model.University, bool) {
	u, ok := s.doc.Universities[id]
	return u, ok
}

func (s *jsonStore) Universities() []model.University {
	out := make([]model.University, 0, len(s.doc.Universities))
	for _, u := range s.doc.Universities {
		out = append(out, u)
	}
	return out
}

func (s *jsonStore) PutUniversity(u model.University) { s.doc.Universities[u.ID] = u }

func (s *jsonStore) DeleteUniversity(id string) { delete(s.doc.Universities, id) }

func (s *jsonStore) Room(id string) (model.Room, bool) {
	r, ok := s.doc.Rooms[id]
	return r, ok
}

func (s *jsonStore) Rooms() []model.Room {
	out := make([]model.Room, 0, len(s.doc.Rooms))
	for _, r := range s.doc.Rooms {
		out = append(out, r)
	}
	return out
}

func (s *jsonStore) PutRoom(r model.Room) { s.doc.Rooms[r.ID] = r }

func (s *jsonStore) DeleteRoom(id string) { delete(s.doc.Rooms, id) }

func (s *jsonStore) Time(id string) (model.Time, bool) {
	t, ok := s.doc.Times[id]
	return t, ok
}

func (s *jsonStore) Times() []model.Time {
	out := make([]model.Time, 0, len(s.doc.Times))
	for _, t := range s.doc.Times {
		out = append(out, t)
	}
	return out
}

func (s *jsonStore) PutTime(t model.Time) { s.doc.Times[t.ID] = t }

func (s *jsonStore) DeleteTime(id string) { delete(s.doc.Times, id) }
