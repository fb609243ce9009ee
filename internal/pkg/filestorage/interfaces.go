package filestorage

import "mime/multipart"

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile stores an uploaded file under a subdirectory and returns
	// the URL path it is served from
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file. Missing files are not
	// an error.
	DeleteFile(fileURL string) error
}
