package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/charitha1008/Mini-Project/internal/model"
	"github.com/charitha1008/Mini-Project/internal/service"
	"github.com/gorilla/mux"
)

// StudentService is the roster behaviour the handlers depend on.
type StudentService interface {
	ListStudents(q service.ListQuery) service.ListResult
	Students() []model.Student
	Get(id string) (model.Student, error)
	Add(in model.StudentInput) (model.Student, error)
	Update(id string, in model.StudentInput) (model.Student, error)
	Delete(id string) error
	BeginEdit(id string) (model.Student, error)
	CancelEdit()
	Editing() (string, bool)
	Submit(in model.StudentInput) (model.Student, error)
}

type StudentHandler struct {
	studentService StudentService
}

func NewStudentHandler(studentService StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	result := h.studentService.ListStudents(service.ListQuery{
		Page:      page,
		Limit:     limit,
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
		Name:      query.Get("name"),
		Subject:   query.Get("subject"),
		Grade:     query.Get("grade"),
	})
	writeJSON(w, http.StatusOK, result)
}

func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.studentService.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	student, err := h.studentService.Add(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, student)
}

func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	student, err := h.studentService.Update(mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := h.studentService.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BeginEdit marks a record as the target of the next Submit.
func (h *StudentHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	student, err := h.studentService.BeginEdit(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	h.studentService.CancelEdit()
	w.WriteHeader(http.StatusNoContent)
}

func (h *StudentHandler) GetEdit(w http.ResponseWriter, r *http.Request) {
	id, editing := h.studentService.Editing()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"editing": editing,
		"id":      id,
	})
}

// Submit adds a record, or updates the one being edited.
func (h *StudentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	student, err := h.studentService.Submit(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func decodeInput(w http.ResponseWriter, r *http.Request) (model.StudentInput, bool) {
	var in model.StudentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return in, false
	}
	return in.Normalize(), true
}

func writeError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  validationErr.Error(),
			"fields": validationErr.Fields,
		})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": err.Error()})
	default:
		log.Println("Error handling request:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}
