package services

import (
	"context"
	"mime/multipart"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/filestorage"
)

// MaxUploadSize is the largest file accepted by POST /upload
const MaxUploadSize int64 = 50 << 20

// UploadService stores files and keeps a record of each one
type UploadService interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string, uploadedBy *int64) (*models.FileUpload, error)
	ListUploads(ctx context.Context) ([]*models.FileUpload, error)
	GetUploadByID(ctx context.Context, id int64) (*models.FileUpload, error)
	DeleteUpload(ctx context.Context, id int64) error
}

type uploadServiceImpl struct {
	uploadRepo repositories.IFileUploadRepository
	storage    filestorage.FileStorage
	logger     zerolog.Logger
}

// NewUploadService creates a new upload service instance
func NewUploadService(uploadRepo repositories.IFileUploadRepository, storage filestorage.FileStorage, logger zerolog.Logger) UploadService {
	return &uploadServiceImpl{
		uploadRepo: uploadRepo,
		storage:    storage,
		logger:     logger,
	}
}

// Upload writes the file to storage and records it. The stored object is
// removed again when the record cannot be written.
func (s *uploadServiceImpl) Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string, uploadedBy *int64) (*models.FileUpload, error) {
	if fileHeader == nil {
		return nil, apperrors.NewValidationError("file is required")
	}
	if fileHeader.Size <= 0 {
		return nil, apperrors.NewValidationError("file is empty")
	}
	if fileHeader.Size > MaxUploadSize {
		return nil, apperrors.NewValidationError("file exceeds the %d MB limit", MaxUploadSize>>20)
	}

	stored, err := s.storage.Save(ctx, fileHeader, folder)
	if err != nil {
		return nil, err
	}

	upload, err := s.uploadRepo.Create(ctx, &models.FileUpload{
		OriginalName: filepath.Base(fileHeader.Filename),
		StoredName:   stored.Key,
		FilePath:     stored.URL,
		FileSize:     stored.Size,
		MimeType:     stored.MimeType,
		UploadedBy:   uploadedBy,
	})
	if err != nil {
		if delErr := s.storage.Delete(ctx, stored.Key); delErr != nil {
			s.logger.Error().Err(delErr).Str("key", stored.Key).Msg("Failed to remove orphaned upload")
		}
		return nil, err
	}

	s.logger.Info().Int64("uploadID", upload.ID).Str("key", stored.Key).Int64("size", stored.Size).Msg("File uploaded")
	return upload, nil
}

func (s *uploadServiceImpl) ListUploads(ctx context.Context) ([]*models.FileUpload, error) {
	return s.uploadRepo.List(ctx)
}

func (s *uploadServiceImpl) GetUploadByID(ctx context.Context, id int64) (*models.FileUpload, error) {
	if err := validID("upload ID", id); err != nil {
		return nil, err
	}
	return s.uploadRepo.GetByID(ctx, id)
}

// DeleteUpload removes the record and then the stored object. A missing
// object is not an error.
func (s *uploadServiceImpl) DeleteUpload(ctx context.Context, id int64) error {
	if err := validID("upload ID", id); err != nil {
		return err
	}
	upload, err := s.uploadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.uploadRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, upload.StoredName); err != nil {
		s.logger.Error().Err(err).Str("key", upload.StoredName).Msg("Failed to delete stored file")
		return apperrors.Wrap(err, "failed to delete stored file")
	}
	return nil
}
