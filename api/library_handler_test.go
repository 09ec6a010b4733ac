package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianmade/agency-site-backend/storage"
)

func newTestLibraryHandler(t *testing.T) libraryHandler {
	t.Helper()
	return newLibraryHandler(storage.NewLocalStore(t.TempDir(), "/media"))
}

// multipartUpload builds a multipart body with an explicit part content type,
// since the handler trusts the part header for MIME validation.
func multipartUpload(t *testing.T, filename, contentType string, content []byte, folder string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	if folder != "" {
		require.NoError(t, writer.WriteField("folder", folder))
	}
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestLibraryUpload(t *testing.T) {
	handler := newTestLibraryHandler(t)

	body, contentType := multipartUpload(t, "team photo.png", "image/png", []byte("fake png"), "")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	handler.upload()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success   bool   `json:"success"`
		Filename  string `json:"filename"`
		Path      string `json:"path"`
		URL       string `json:"url"`
		MediaType string `json:"media_type"`
		Size      int64  `json:"size"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.Path, defaultUploadFolder+"/"))
	assert.True(t, strings.HasSuffix(resp.Filename, "-team-photo.png"))
	assert.Equal(t, "/media/"+resp.Path, resp.URL)
	assert.Equal(t, storage.MediaTypeImage, resp.MediaType)
	assert.Equal(t, int64(len("fake png")), resp.Size)
}

func TestLibraryUploadCustomFolder(t *testing.T) {
	handler := newTestLibraryHandler(t)

	body, contentType := multipartUpload(t, "a.png", "image/png", []byte("data"), "portfolio")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	handler.upload()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"portfolio/`)
}

func TestLibraryUploadMissingFile(t *testing.T) {
	handler := newTestLibraryHandler(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("folder", "uploads"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	handler.upload()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLibraryUploadRejectsUnsupportedType(t *testing.T) {
	handler := newTestLibraryHandler(t)

	body, contentType := multipartUpload(t, "script.sh", "application/x-sh", []byte("#!/bin/sh"), "")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	handler.upload()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLibraryListAndRemove(t *testing.T) {
	handler := newTestLibraryHandler(t)

	body, contentType := multipartUpload(t, "a.png", "image/png", []byte("data"), "")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	upload := httptest.NewRecorder()
	handler.upload()(upload, req)
	require.Equal(t, http.StatusOK, upload.Code)

	var uploaded struct {
		Filename string `json:"filename"`
	}
	require.NoError(t, json.Unmarshal(upload.Body.Bytes(), &uploaded))

	list := httptest.NewRecorder()
	handler.list()(list, httptest.NewRequest(http.MethodGet, "/upload", nil))
	require.Equal(t, http.StatusOK, list.Code)

	var listed struct {
		Images []storage.Object `json:"images"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &listed))
	require.Len(t, listed.Images, 1)

	// A bare filename resolves against the default folder.
	remove := httptest.NewRecorder()
	handler.remove()(remove, httptest.NewRequest(http.MethodDelete, "/upload?filename="+uploaded.Filename, nil))
	require.Equal(t, http.StatusOK, remove.Code)

	again := httptest.NewRecorder()
	handler.list()(again, httptest.NewRequest(http.MethodGet, "/upload", nil))
	assert.Contains(t, again.Body.String(), `"images":[]`)
}

func TestLibraryRemoveMissingFile(t *testing.T) {
	handler := newTestLibraryHandler(t)

	rec := httptest.NewRecorder()
	handler.remove()(rec, httptest.NewRequest(http.MethodDelete, "/upload?filename=nope.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLibraryRemoveMissingParam(t *testing.T) {
	handler := newTestLibraryHandler(t)

	rec := httptest.NewRecorder()
	handler.remove()(rec, httptest.NewRequest(http.MethodDelete, "/upload", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUploadURLUnsupportedOnLocal(t *testing.T) {
	handler := newTestLibraryHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload-url",
		strings.NewReader(`{"filename":"a.png","contentType":"image/png"}`))
	handler.createUploadURL()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUploadURLRequiredFields(t *testing.T) {
	handler := newTestLibraryHandler(t)

	for _, body := range []string{
		`{"contentType":"image/png"}`,
		`{"filename":"a.png"}`,
	} {
		rec := httptest.NewRecorder()
		handler.createUploadURL()(rec, httptest.NewRequest(http.MethodPost, "/upload-url", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}
