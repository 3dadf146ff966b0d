package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/charitha1008/Mini-Project/internal/model"
)

// RowError describes a CSV row that could not be imported.
type RowError struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

// ImportReport summarises a CSV import.
type ImportReport struct {
	TotalRecords int        `json:"totalRecords"`
	Imported     int        `json:"imported"`
	Skipped      int        `json:"skipped"`
	Errors       []RowError `json:"errors,omitempty"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      time.Time  `json:"endTime"`
}

// UploadService bulk-loads students from CSV files into the roster.
type UploadService struct {
	students *StudentService
}

func NewUploadService(students *StudentService) *UploadService {
	return &UploadService{students: students}
}

// ImportCSV reads rows of name,age,grade,subject after a header row and adds
// each valid row to the roster. Malformed or invalid rows are skipped and
// reported; a read or storage failure stops the import.
func (s *UploadService) ImportCSV(r io.Reader) (ImportReport, error) {
	report := ImportReport{StartTime: time.Now()}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil { // Skip header row
		if errors.Is(err, io.EOF) {
			report.EndTime = time.Now()
			return report, nil
		}
		return report, fmt.Errorf("read csv header: %w", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				report.EndTime = time.Now()
				return report, fmt.Errorf("read csv: %w", err)
			}
			report.TotalRecords++
			report.skip(parseErr.Line, err.Error())
			continue
		}
		report.TotalRecords++
		line, _ := reader.FieldPos(0)
		if len(record) != 4 {
			report.skip(line, fmt.Sprintf("expected 4 fields, got %d", len(record)))
			continue
		}

		in := model.ParseStudentForm(record[0], record[1], record[2], record[3])
		if _, err := s.students.Add(in); err != nil {
			if errors.Is(err, ErrValidation) {
				report.skip(line, err.Error())
				continue
			}
			report.EndTime = time.Now()
			return report, err
		}
		report.Imported++
	}

	report.EndTime = time.Now()
	log.Printf("Imported %d of %d students in %v", report.Imported, report.TotalRecords, report.EndTime.Sub(report.StartTime))
	return report, nil
}

func (r *ImportReport) skip(line int, msg string) {
	r.Skipped++
	r.Errors = append(r.Errors, RowError{Line: line, Error: strings.TrimSpace(msg)})
}
