package models

import "time"

// FileUpload records a file stored through POST /upload
type FileUpload struct {
	ID           int64     `json:"id" db:"id"`
	OriginalName string    `json:"original_name" db:"original_name"`
	StoredName   string    `json:"stored_name" db:"stored_name"`
	FilePath     string    `json:"file_path" db:"file_path"`
	FileSize     int64     `json:"file_size" db:"file_size"`
	MimeType     string    `json:"mime_type" db:"mime_type"`
	UploadedBy   *int64    `json:"uploaded_by" db:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	UploadedByUsername *string `json:"uploaded_by_username,omitempty" db:"uploaded_by_username"`
}
