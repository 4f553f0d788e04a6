package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models"
)

// IFileUploadRepository defines upload record persistence
type IFileUploadRepository interface {
	List(ctx context.Context) ([]*models.FileUpload, error)
	GetByID(ctx context.Context, id int64) (*models.FileUpload, error)
	Create(ctx context.Context, upload *models.FileUpload) (*models.FileUpload, error)
	Delete(ctx context.Context, id int64) error
}

// FileUploadRepository handles database operations for uploaded files
type FileUploadRepository struct {
	table[models.FileUpload]
}

func fileUploadSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	cols := columns("fu", "id", "original_name", "stored_name", "file_path", "file_size", "mime_type", "uploaded_by", "created_at")
	return sb.Select(append(cols, "a.username AS uploaded_by_username")...).
		From("file_uploads fu").
		LeftJoin("admin_accounts a ON a.id = fu.uploaded_by")
}

// NewFileUploadRepository creates a new FileUploadRepository
func NewFileUploadRepository(db *pgxpool.Pool) *FileUploadRepository {
	return &FileUploadRepository{table: newTable[models.FileUpload](db, "file_uploads", "fu", "file", fileUploadSelect)}
}

// List returns uploads newest first
func (r *FileUploadRepository) List(ctx context.Context) ([]*models.FileUpload, error) {
	return r.list(ctx, nil, "fu.created_at DESC", "fu.id DESC")
}

// GetByID retrieves an upload record by ID
func (r *FileUploadRepository) GetByID(ctx context.Context, id int64) (*models.FileUpload, error) {
	return r.getByID(ctx, id)
}

// Create records a stored file
func (r *FileUploadRepository) Create(ctx context.Context, upload *models.FileUpload) (*models.FileUpload, error) {
	return r.create(ctx, map[string]interface{}{
		"original_name": upload.OriginalName,
		"stored_name":   upload.StoredName,
		"file_path":     upload.FilePath,
		"file_size":     upload.FileSize,
		"mime_type":     upload.MimeType,
		"uploaded_by":   upload.UploadedBy,
	})
}

// Delete removes the record only. The stored object is removed by the caller.
func (r *FileUploadRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
