package service

import (
	"math"
	"sort"
	"strings"

	"github.com/charitha1008/Mini-Project/internal/model"
)

type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string // "name", "age", "grade", "subject"; empty keeps roster order
	SortOrder string // "asc" or "desc"
	Name      string // case-insensitive substring
	Subject   string
	Grade     string
}

type ListResult struct {
	Data       []model.Student `json:"data"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
}

// ListStudents filters, sorts and paginates a snapshot of the roster.
func (s *StudentService) ListStudents(q ListQuery) ListResult {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	var students []model.Student
	name := strings.ToLower(q.Name)
	for _, student := range s.Students() {
		if name != "" && !strings.Contains(strings.ToLower(student.Name), name) {
			continue
		}
		if q.Subject != "" && student.Subject != q.Subject {
			continue
		}
		if q.Grade != "" && student.Grade != q.Grade {
			continue
		}
		students = append(students, student)
	}

	if less := lessBy(q.SortBy); less != nil {
		desc := strings.EqualFold(q.SortOrder, "desc")
		sort.SliceStable(students, func(i, j int) bool {
			if desc {
				return less(students[j], students[i])
			}
			return less(students[i], students[j])
		})
	}

	total := len(students)
	start := min((q.Page-1)*q.Limit, total)
	end := min(start+q.Limit, total)

	return ListResult{
		Data:       append([]model.Student{}, students[start:end]...),
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(q.Limit))),
	}
}

func lessBy(field string) func(a, b model.Student) bool {
	switch field {
	case "name":
		return func(a, b model.Student) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "age":
		return func(a, b model.Student) bool { return a.Age < b.Age }
	case "grade":
		return func(a, b model.Student) bool { return a.Grade < b.Grade }
	case "subject":
		return func(a, b model.Student) bool { return a.Subject < b.Subject }
	}
	return nil
}
