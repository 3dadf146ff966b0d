package service_test

import (
	"sync"
	"testing"

	"github.com/charitha1008/Mini-Project/internal/model"
	"github.com/charitha1008/Mini-Project/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditSession(t *testing.T) {
	s, _ := seeded(t, first, second)

	_, editing := s.Editing()
	assert.False(t, editing)

	student, err := s.BeginEdit("1")
	require.NoError(t, err)
	assert.Equal(t, first, student)

	id, editing := s.Editing()
	assert.True(t, editing)
	assert.Equal(t, "1", id)

	// A second edit request replaces the first
	_, err = s.BeginEdit("2")
	require.NoError(t, err)
	id, _ = s.Editing()
	assert.Equal(t, "2", id)

	s.CancelEdit()
	_, editing = s.Editing()
	assert.False(t, editing)
}

func TestBeginEditNotFound(t *testing.T) {
	s, _ := seeded(t, first)
	_, err := s.BeginEdit("1")
	require.NoError(t, err)

	_, err = s.BeginEdit("missing")
	assert.ErrorIs(t, err, service.ErrNotFound)

	// The existing session is kept
	id, editing := s.Editing()
	assert.True(t, editing)
	assert.Equal(t, "1", id)
}

func TestSubmitDispatch(t *testing.T) {
	in := model.StudentInput{Name: "New", Age: 30, Grade: "B", Subject: "X"}

	t.Run("Adds when idle", func(t *testing.T) {
		s, _ := seeded(t, first)

		student, err := s.Submit(in)
		require.NoError(t, err)
		assert.Equal(t, "id-1", student.ID)
		assert.Len(t, s.Students(), 2)
	})

	t.Run("Updates when editing", func(t *testing.T) {
		s, _ := seeded(t, first, second)
		_, err := s.BeginEdit("2")
		require.NoError(t, err)

		student, err := s.Submit(in)
		require.NoError(t, err)
		assert.Equal(t, in.WithID("2"), student)
		assert.Equal(t, []model.Student{first, in.WithID("2")}, s.Students())

		_, editing := s.Editing()
		assert.False(t, editing)
	})

	t.Run("Keeps editing after invalid submit", func(t *testing.T) {
		s, _ := seeded(t, first)
		_, err := s.BeginEdit("1")
		require.NoError(t, err)

		_, err = s.Submit(model.StudentInput{})
		assert.ErrorIs(t, err, service.ErrValidation)

		id, editing := s.Editing()
		assert.True(t, editing)
		assert.Equal(t, "1", id)
	})
}

func TestDeleteEndsEditOfDeletedRecord(t *testing.T) {
	s, _ := seeded(t, first, second)

	_, err := s.BeginEdit("1")
	require.NoError(t, err)
	require.NoError(t, s.Delete("2"))
	_, editing := s.Editing()
	assert.True(t, editing)

	require.NoError(t, s.Delete("1"))
	_, editing = s.Editing()
	assert.False(t, editing)
}

func TestAddEndsEditSession(t *testing.T) {
	s, _ := seeded(t, first)
	_, err := s.BeginEdit("1")
	require.NoError(t, err)

	_, err = s.Add(model.StudentInput{Name: "Ana", Age: 22, Grade: "A", Subject: "Bio"})
	require.NoError(t, err)

	_, editing := s.Editing()
	assert.False(t, editing)
}

func TestSubmitDuringConcurrentEdits(t *testing.T) {
	s, _ := seeded(t, first, second)
	in := model.StudentInput{Name: "New", Age: 30, Grade: "B", Subject: "X"}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if _, err := s.BeginEdit("1"); err != nil {
				return
			}
			s.CancelEdit()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_, err := s.Submit(in)
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	// Every submit either added a record or updated "1"; none went astray.
	students := s.Students()
	assert.Equal(t, "1", students[0].ID)
	assert.Equal(t, second, students[1])
	for _, student := range students[2:] {
		assert.Equal(t, in, student.Input())
	}
}
