package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charitha1008/Mini-Project/internal/handler"
	"github.com/charitha1008/Mini-Project/internal/service"
	"github.com/charitha1008/Mini-Project/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var quiet = log.New(io.Discard, "", 0)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) ImportCSV(r io.Reader) (service.ImportReport, error) {
	args := m.Called(r)
	return args.Get(0).(service.ImportReport), args.Error(1)
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadCSV(t *testing.T) {
	mockService := new(MockUploadService)
	mockService.On("ImportCSV", mock.Anything).Return(service.ImportReport{TotalRecords: 1, Imported: 1}, nil)
	handler := handler.NewUploadHandler(mockService)

	body, contentType := multipartBody(t, map[string]string{"test.csv": "name,age,grade,subject\nAlice,20,A,Math"})
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.UploadCSV(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var response struct {
		Reports map[string]service.ImportReport `json:"reports"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, 1, response.Reports["test.csv"].Imported)

	mockService.AssertNumberOfCalls(t, "ImportCSV", 1)
}

func TestUploadCSV_NoFiles(t *testing.T) {
	mockService := new(MockUploadService)
	handler := handler.NewUploadHandler(mockService)

	body, contentType := multipartBody(t, nil)
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.UploadCSV(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	respBody, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(respBody), "No files uploaded")
	mockService.AssertNotCalled(t, "ImportCSV", mock.Anything)
}

func TestUploadCSV_ImportFailure(t *testing.T) {
	mockService := new(MockUploadService)
	mockService.On("ImportCSV", mock.Anything).Return(service.ImportReport{}, storage.ErrStorage)
	handler := handler.NewUploadHandler(mockService)

	body, contentType := multipartBody(t, map[string]string{"test.csv": "name,age,grade,subject\n"})
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.UploadCSV(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUploadCSV_IntoRoster(t *testing.T) {
	students := service.NewStudentService(storage.NewMemoryStorage(), service.WithLogger(quiet))
	students.Load()
	handler := handler.NewUploadHandler(service.NewUploadService(students))

	body, contentType := multipartBody(t, map[string]string{"roster.csv": "name,age,grade,subject\nAlice,20,A,Math\nBob,,B,Art\n"})
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.UploadCSV(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, students.Students(), 1)
	assert.Equal(t, "Alice", students.Students()[0].Name)
}

func TestUploadCSV_FileTooLarge(t *testing.T) {
	mockService := new(MockUploadService)
	handler := handler.NewUploadHandler(mockService)

	body, contentType := multipartBody(t, map[string]string{"large.csv": strings.Repeat("x", 11<<20)})
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.UploadCSV(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	mockService.AssertNotCalled(t, "ImportCSV", mock.Anything)
}

func TestUploadCSV_NotMultipart(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
	}{
		{"JSON body", "application/json"},
		{"Missing boundary", "multipart/form-data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockUploadService)
			handler := handler.NewUploadHandler(mockService)

			req := httptest.NewRequest("POST", "/api/upload", strings.NewReader(`{"name":"Ana"}`))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()

			handler.UploadCSV(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockService.AssertNotCalled(t, "ImportCSV", mock.Anything)
		})
	}
}
