package service

import "github.com/charitha1008/Mini-Project/internal/model"

var sampleStudents = []model.Student{
	{ID: "1", Name: "John Smith", Age: 20, Grade: "A", Subject: "Mathematics"},
	{ID: "2", Name: "Sarah Johnson", Age: 19, Grade: "B", Subject: "Physics"},
	{ID: "3", Name: "Mike Davis", Age: 21, Grade: "A", Subject: "Chemistry"},
}

// SeedSamples fills an empty roster with a few example students. It reports
// whether anything was written.
func (s *StudentService) SeedSamples() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.students) > 0 {
		return false, nil
	}
	if err := s.save(clone(sampleStudents)); err != nil {
		return false, err
	}
	s.logger.Printf("Seeded roster with %d sample students", len(sampleStudents))
	return true, nil
}
