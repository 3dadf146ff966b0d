package service

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/charitha1008/Mini-Project/internal/model"
	"github.com/charitha1008/Mini-Project/internal/storage"
)

// StudentsKey is the storage key holding the JSON-encoded roster.
const StudentsKey = "students"

// StudentService owns the roster and keeps it reconciled with storage after
// every mutation. It also tracks the single in-progress edit, if any.
type StudentService struct {
	mu       sync.Mutex
	storage  storage.Storage
	ids      IDGenerator
	logger   *log.Logger
	students []model.Student
	editing  string
}

type Option func(*StudentService)

// WithIDGenerator replaces the default clock-based id generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *StudentService) { s.ids = ids }
}

func WithLogger(logger *log.Logger) Option {
	return func(s *StudentService) { s.logger = logger }
}

func NewStudentService(store storage.Storage, opts ...Option) *StudentService {
	s := &StudentService{
		storage: store,
		ids:     NewClockIDs(nil),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory roster with the persisted one. Missing or
// unreadable data yields an empty roster.
func (s *StudentService) Load() []model.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = s.read()
	s.editing = ""
	return clone(s.students)
}

func (s *StudentService) read() []model.Student {
	raw, ok, err := s.storage.Get(StudentsKey)
	if err != nil {
		s.logger.Printf("Failed to read roster, starting empty: %v", err)
		return []model.Student{}
	}
	if !ok || raw == "" {
		return []model.Student{}
	}

	var students []model.Student
	if err := json.Unmarshal([]byte(raw), &students); err != nil {
		s.logger.Printf("Stored roster is not valid JSON, starting empty: %v", err)
		return []model.Student{}
	}
	if students == nil {
		students = []model.Student{}
	}
	return students
}

// GenerateID returns an id that is not used by any record in the roster.
func (s *StudentService) GenerateID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generateID()
}

func (s *StudentService) generateID() string {
	for {
		id := s.ids.NewID()
		if s.indexOf(id) == -1 {
			return id
		}
	}
}

// Add appends a new record built from in and persists the roster.
func (s *StudentService) Add(in model.StudentInput) (model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(in)
}

func (s *StudentService) add(in model.StudentInput) (model.Student, error) {
	in = in.Normalize()
	if missing := in.Missing(); len(missing) > 0 {
		return model.Student{}, &ValidationError{Fields: missing}
	}

	student := in.WithID(s.generateID())
	next := append(clone(s.students), student)
	if err := s.save(next); err != nil {
		return model.Student{}, err
	}
	s.editing = ""
	s.logger.Printf("Added student %s (%s)", student.ID, student.Name)
	return student, nil
}

// Update replaces the fields of the record with the given id, keeping its
// position and id. Update applies the same presence checks as Add.
func (s *StudentService) Update(id string, in model.StudentInput) (model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(id, in)
}

func (s *StudentService) update(id string, in model.StudentInput) (model.Student, error) {
	index := s.indexOf(id)
	if index == -1 {
		return model.Student{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	in = in.Normalize()
	if missing := in.Missing(); len(missing) > 0 {
		return model.Student{}, &ValidationError{Fields: missing}
	}

	student := in.WithID(id)
	next := clone(s.students)
	next[index] = student
	if err := s.save(next); err != nil {
		return model.Student{}, err
	}
	s.editing = ""
	s.logger.Printf("Updated student %s", id)
	return student, nil
}

// Delete removes the record with the given id. An unknown id leaves the
// roster and storage untouched.
func (s *StudentService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index == -1 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := make([]model.Student, 0, len(s.students)-1)
	next = append(next, s.students[:index]...)
	next = append(next, s.students[index+1:]...)
	if err := s.save(next); err != nil {
		return err
	}
	if s.editing == id {
		s.editing = ""
	}
	s.logger.Printf("Deleted student %s", id)
	return nil
}

// Persist writes the whole roster to storage.
func (s *StudentService) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(s.students)
}

// save writes next to storage and only then makes it the live roster, so a
// failed write leaves memory matching what is stored.
func (s *StudentService) save(next []model.Student) error {
	if next == nil {
		next = []model.Student{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := s.storage.Set(StudentsKey, string(data)); err != nil {
		s.logger.Printf("Failed to persist roster: %v", err)
		return fmt.Errorf("persist roster: %w", err)
	}
	s.students = next
	return nil
}

// Students returns a copy of the roster in insertion order.
func (s *StudentService) Students() []model.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.students)
}

func (s *StudentService) Get(id string) (model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index == -1 {
		return model.Student{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.students[index], nil
}

func (s *StudentService) indexOf(id string) int {
	for i, student := range s.students {
		if student.ID == id {
			return i
		}
	}
	return -1
}

func clone(students []model.Student) []model.Student {
	out := make([]model.Student, len(students))
	copy(out, students)
	return out
}
