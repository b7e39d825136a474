package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type uploadPart struct {
	field    string
	filename string
	content  string
}

func multipartRequest(t *testing.T, method, target string, values map[string]string, parts ...uploadPart) *http.Request {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range values {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, part := range parts {
		w, err := writer.CreateFormFile(part.field, part.filename)
		require.NoError(t, err)
		_, err = w.Write([]byte(part.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
