// ABOUTME: Store is the ordered set of attachments owned by one deck.
// ABOUTME: Bulk open, save and close run over entries in insertion order.

package deck

import "fmt"

// Store holds a deck's attachments. It is not safe for concurrent use; one
// goroutine drives a deck at a time.
type Store struct {
	entries []*Attachment
}

func newStore() *Store {
	return &Store{}
}

// Add appends a to the store. Identifiers must be unique within a store.
func (s *Store) Add(a *Attachment) error {
	if _, ok := s.Get(a.id); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAttachment, a.id)
	}
	s.entries = append(s.entries, a)
	return nil
}

// Attach creates an attachment from sourcePath and adds it.
func (s *Store) Attach(sourcePath string, rc uint32) (*Attachment, error) {
	a, err := NewAttachment(sourcePath, rc)
	if err != nil {
		return nil, err
	}
	if err := s.Add(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) Get(id string) (*Attachment, bool) {
	for _, a := range s.entries {
		if a.id == id {
			return a, true
		}
	}
	return nil, false
}

// Remove drops the attachment with the given id. Files already written to a
// storage directory are left in place.
func (s *Store) Remove(id string) bool {
	for i, a := range s.entries {
		if a.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Len() int {
	return len(s.entries)
}

// All returns the attachments in order. The slice is a copy; the attachments
// are shared.
func (s *Store) All() []*Attachment {
	out := make([]*Attachment, len(s.entries))
	copy(out, s.entries)
	return out
}

// SaveAll saves every attachment into storageDir, which must exist. The first
// failure stops the walk and is returned.
func (s *Store) SaveAll(storageDir string) error {
	for _, a := range s.entries {
		if err := a.Save(storageDir); err != nil {
			return err
		}
	}
	return nil
}

// OpenAll loads every attachment from storageDir. The first failure stops the
// walk; attachments opened before it stay open.
func (s *Store) OpenAll(storageDir string) error {
	for _, a := range s.entries {
		if err := a.Open(storageDir); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) CloseAll() {
	for _, a := range s.entries {
		a.Close()
	}
}
