package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/charitha1008/Mini-Project/internal/model"
	"github.com/charitha1008/Mini-Project/internal/service"
	"github.com/gorilla/mux"
)

var notices = map[string]string{
	"added":   "Student added successfully!",
	"updated": "Student updated successfully!",
	"deleted": "Student deleted successfully!",
}

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Student Roster</title>
</head>
<body>
{{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/" id="studentForm">
	<h2 id="formTitle">{{if .Editing}}Edit Student{{else}}Add New Student{{end}}</h2>
	<input name="name" placeholder="Name" value="{{.Form.Name}}">
	<input name="age" type="number" min="1" placeholder="Age" value="{{if .Form.Age}}{{.Form.Age}}{{end}}">
	<select name="grade">
		<option value="">Grade</option>
		{{range $.Grades}}<option value="{{.}}"{{if eq . $.Form.Grade}} selected{{end}}>{{.}}</option>{{end}}
	</select>
	<input name="subject" placeholder="Subject" value="{{.Form.Subject}}">
	<button type="submit">{{if .Editing}}Update Student{{else}}Add Student{{end}}</button>
</form>
{{if .Editing}}<form method="post" action="/cancel"><button type="submit">Cancel</button></form>{{end}}
<div id="studentsGrid">
{{range .Students}}
	<div class="student-card">
		<h3>{{.Name}}</h3>
		<p><strong>Age:</strong> {{.Age}} years</p>
		<p><strong>Subject:</strong> {{.Subject}}</p>
		<p><strong>Grade:</strong> <span class="grade-badge grade-{{.Grade}}">{{.Grade}}</span></p>
		<form method="post" action="/students/{{.ID}}/edit"><button class="btn btn-edit" type="submit">Edit</button></form>
		<form method="post" action="/students/{{.ID}}/delete" onsubmit="return confirm('Are you sure you want to delete this student?')"><button class="btn btn-delete" type="submit">Delete</button></form>
	</div>
{{else}}
	<div class="empty-message">No students found. Add some students to get started!</div>
{{end}}
</div>
</body>
</html>
`))

type pageData struct {
	Students []model.Student
	Form     model.StudentInput
	Grades   []string
	Editing  bool
	Notice   string
	Error    string
}

// PageHandler serves the roster as a server-rendered form page.
type PageHandler struct {
	studentService StudentService
}

func NewPageHandler(studentService StudentService) *PageHandler {
	return &PageHandler{studentService: studentService}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := pageData{Notice: notices[r.URL.Query().Get("notice")]}
	if id, editing := h.studentService.Editing(); editing {
		if student, err := h.studentService.Get(id); err == nil {
			data.Editing = true
			data.Form = student.Input()
		}
	}
	h.render(w, http.StatusOK, data)
}

func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form submission", http.StatusBadRequest)
		return
	}
	in := model.ParseStudentForm(r.PostForm.Get("name"), r.PostForm.Get("age"), r.PostForm.Get("grade"), r.PostForm.Get("subject"))

	_, editing := h.studentService.Editing()
	if _, err := h.studentService.Submit(in); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, service.ErrNotFound):
			status = http.StatusNotFound
		default:
			log.Println("Error submitting student:", err)
		}
		_, stillEditing := h.studentService.Editing()
		h.render(w, status, pageData{Form: in, Editing: stillEditing, Error: err.Error()})
		return
	}

	if editing {
		redirect(w, r, "updated")
	} else {
		redirect(w, r, "added")
	}
}

func (h *PageHandler) Edit(w http.ResponseWriter, r *http.Request) {
	if _, err := h.studentService.BeginEdit(mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	redirect(w, r, "")
}

func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.studentService.Delete(mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Println("Error deleting student:", err)
		http.Error(w, "Failed to delete student", http.StatusInternalServerError)
		return
	}
	redirect(w, r, "deleted")
}

func (h *PageHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.studentService.CancelEdit()
	redirect(w, r, "")
}

func (h *PageHandler) render(w http.ResponseWriter, status int, data pageData) {
	data.Students = h.studentService.Students()
	data.Grades = gradeOptions(data.Form.Grade)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		log.Println("Error rendering page:", err)
	}
}

// gradeOptions lists the selectable grades, keeping a non-standard current
// value selectable.
func gradeOptions(current string) []string {
	grades := []string{"A", "B", "C", "D", "F"}
	if current == "" {
		return grades
	}
	for _, g := range grades {
		if g == current {
			return grades
		}
	}
	return append(grades, current)
}

func redirect(w http.ResponseWriter, r *http.Request, notice string) {
	target := "/"
	if notice != "" {
		target += "?notice=" + notice
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
