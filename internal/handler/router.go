package handler

import (
	"github.com/gorilla/mux"
)

// NewRouter wires the JSON API and the HTML page.
func NewRouter(students *StudentHandler, uploads *UploadHandler, page *PageHandler) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/students", students.ListStudents).Methods("GET")
	api.HandleFunc("/students", students.CreateStudent).Methods("POST")
	api.HandleFunc("/students/{id}", students.GetStudent).Methods("GET")
	api.HandleFunc("/students/{id}", students.UpdateStudent).Methods("PUT")
	api.HandleFunc("/students/{id}", students.DeleteStudent).Methods("DELETE")
	api.HandleFunc("/students/{id}/edit", students.BeginEdit).Methods("POST")
	api.HandleFunc("/edit", students.GetEdit).Methods("GET")
	api.HandleFunc("/edit", students.CancelEdit).Methods("DELETE")
	api.HandleFunc("/submit", students.Submit).Methods("POST")
	api.HandleFunc("/upload", uploads.UploadCSV).Methods("POST")

	r.HandleFunc("/", page.Index).Methods("GET")
	r.HandleFunc("/", page.Submit).Methods("POST")
	r.HandleFunc("/students/{id}/edit", page.Edit).Methods("POST")
	r.HandleFunc("/students/{id}/delete", page.Delete).Methods("POST")
	r.HandleFunc("/cancel", page.Cancel).Methods("POST")

	return r
}
