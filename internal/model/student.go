package model

import (
	"strconv"
	"strings"
)

// Student is one roster record. The JSON layout is the persisted format.
type Student struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Grade   string `json:"grade"`
	Subject string `json:"subject"`
}

// StudentInput carries the user-editable fields of a Student.
type StudentInput struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Grade   string `json:"grade"`
	Subject string `json:"subject"`
}

// ParseStudentForm builds an input from raw form values. A non-numeric age
// parses to zero and is therefore reported missing.
func ParseStudentForm(name, age, grade, subject string) StudentInput {
	n, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil {
		n = 0
	}
	return StudentInput{Name: name, Age: n, Grade: grade, Subject: subject}.Normalize()
}

// Normalize trims surrounding whitespace from the text fields.
func (in StudentInput) Normalize() StudentInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Grade = strings.TrimSpace(in.Grade)
	in.Subject = strings.TrimSpace(in.Subject)
	return in
}

// Missing returns the names of the fields that are empty, in form order.
func (in StudentInput) Missing() []string {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Age <= 0 {
		missing = append(missing, "age")
	}
	if in.Grade == "" {
		missing = append(missing, "grade")
	}
	if in.Subject == "" {
		missing = append(missing, "subject")
	}
	return missing
}

// WithID turns the input into a record with the given id.
func (in StudentInput) WithID(id string) Student {
	return Student{
		ID:      id,
		Name:    in.Name,
		Age:     in.Age,
		Grade:   in.Grade,
		Subject: in.Subject,
	}
}

// Input returns the editable fields of s.
func (s Student) Input() StudentInput {
	return StudentInput{Name: s.Name, Age: s.Age, Grade: s.Grade, Subject: s.Subject}
}
