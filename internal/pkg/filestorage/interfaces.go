package filestorage

import (
	"context"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/helpers"
)

// StoredFile describes an object written by a FileStorage
type StoredFile struct {
	Key      string // folder/generated-name, unique within the storage
	URL      string // public URL clients fetch the file from
	Size     int64
	MimeType string
}

// FileStorage stores uploaded files and serves them under a public URL
type FileStorage interface {
	Save(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (*StoredFile, error)
	Delete(ctx context.Context, key string) error
}

// objectKey generates the storage key for an upload. Folder names are
// slugified so a client cannot escape the storage root.
func objectKey(originalName, folder string) string {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
	if folder = helpers.Slugify(folder); folder != "" {
		return folder + "/" + name
	}
	return name
}

func detectMimeType(fileHeader *multipart.FileHeader) string {
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	if ct := mime.TypeByExtension(filepath.Ext(fileHeader.Filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
