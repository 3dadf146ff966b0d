package service

import (
	"fmt"

	"github.com/charitha1008/Mini-Project/internal/model"
)

// BeginEdit starts editing the record with the given id and returns it.
// Any edit already in progress is dropped.
func (s *StudentService) BeginEdit(id string) (model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index == -1 {
		return model.Student{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.editing = id
	return s.students[index], nil
}

func (s *StudentService) CancelEdit() {
	s.mu.Lock()
	s.editing = ""
	s.mu.Unlock()
}

// Editing reports the id of the record being edited.
func (s *StudentService) Editing() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing, s.editing != ""
}

// Submit updates the record being edited, or adds a new one when no edit is
// in progress.
func (s *StudentService) Submit(in model.StudentInput) (model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing != "" {
		return s.update(s.editing, in)
	}
	return s.add(in)
}
