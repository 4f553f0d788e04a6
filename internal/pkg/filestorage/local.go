package filestorage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
// The directory is served by the router under /uploads.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates basePath if needed
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes the upload below basePath/folder under a generated name
func (ls *LocalStorage) Save(_ context.Context, fileHeader *multipart.FileHeader, folder string) (*StoredFile, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	key := objectKey(fileHeader.Filename, folder)
	dstPath := filepath.Join(ls.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create subdirectory: %w", err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, file)
	if err != nil {
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("key", key).Int64("size", written).Msg("File saved")
	return &StoredFile{
		Key:      key,
		URL:      ls.baseURL + "/" + key,
		Size:     written,
		MimeType: detectMimeType(fileHeader),
	}, nil
}

// Delete removes a stored file. A missing file is not an error.
func (ls *LocalStorage) Delete(_ context.Context, key string) error {
	clean := filepath.Clean("/" + key)
	if key == "" || clean == "/" {
		return fmt.Errorf("invalid file key: %q", key)
	}

	physicalPath := filepath.Join(ls.basePath, clean)
	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}
