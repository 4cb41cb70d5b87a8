package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// FormFile is one file part of a multipart body.
type FormFile struct {
	Field   string
	Name    string
	Content []byte
}

// NewMultipartRequest builds a multipart/form-data request from fields and files.
func NewMultipartRequest(t *testing.T, method, target string, fields map[string]string, files []FormFile) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.Name)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// NewFileHeader parses a single uploaded file the way a server would see it.
func NewFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	req := NewMultipartRequest(t, http.MethodPost, "/", nil, []FormFile{{Field: "file", Name: name, Content: content}})
	require.NoError(t, req.ParseMultipartForm(1<<20))
	headers := req.MultipartForm.File["file"]
	require.Len(t, headers, 1)
	return headers[0]
}

// ValidOrphanageFields is a complete, valid create form.
func ValidOrphanageFields() map[string]string {
	return map[string]string{
		"name":             "Lar Feliz",
		"latitude":         "-20.62",
		"longitude":        "-49.65",
		"about":            "desc",
		"instructions":     "bring ID",
		"opening_hours":    "9-17",
		"open_on_weekends": "true",
	}
}
