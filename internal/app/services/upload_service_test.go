package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories/mocks"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/filestorage"
)

func formFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestUploadStoresAndRecords(t *testing.T) {
	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir, "http://cdn.test/uploads")
	require.NoError(t, err)
	svc := NewUploadService(mocks.NewFileUploadRepository(), storage, zerolog.Nop())
	ctx := context.Background()

	adminID := int64(1)
	upload, err := svc.Upload(ctx, formFile(t, "notes.pdf", []byte("hello")), "resources", &adminID)
	require.NoError(t, err)

	assert.Equal(t, "notes.pdf", upload.OriginalName)
	assert.Equal(t, int64(5), upload.FileSize)
	assert.Equal(t, "http://cdn.test/uploads/"+upload.StoredName, upload.FilePath)
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(upload.StoredName)))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUpload(ctx, upload.ID))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(upload.StoredName)))
	assert.True(t, os.IsNotExist(err))

	_, err = svc.GetUploadByID(ctx, upload.ID)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	storage, err := filestorage.NewLocalStorage(t.TempDir(), "http://cdn.test/uploads")
	require.NoError(t, err)
	svc := NewUploadService(mocks.NewFileUploadRepository(), storage, zerolog.Nop())

	_, err = svc.Upload(context.Background(), formFile(t, "empty.txt", nil), "", nil)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	_, err = svc.Upload(context.Background(), nil, "", nil)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}
