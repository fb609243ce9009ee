package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/thequad/api/internal/pkg/logger"
)

// Extensions accepted for profile photo uploads
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// LocalStorage stores uploaded files on the local filesystem and serves
// them as static content under baseURL.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath. Returned file
// paths are prefixed with baseURL.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveFile stores an uploaded image under subPath with a generated name
// and returns the URL path it will be served from
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return "", fmt.Errorf("unsupported file type %q", ext)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dirPath := ls.basePath
	if subPath != "" {
		dirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(dirPath, 0o755); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	name := uuid.New().String() + ext
	dstPath := filepath.Join(dirPath, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	fileURL := ls.baseURL + "/" + path.Join(subPath, name)
	logger.Info().Str("filename", fileHeader.Filename).Str("url", fileURL).Msg("File saved")
	return fileURL, nil
}

// DeleteFile removes a stored file given its served URL path. Deleting a
// file that no longer exists succeeds.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	rel := strings.TrimPrefix(fileURL, ls.baseURL)
	rel = strings.TrimLeft(rel, "/")
	rel = filepath.Clean(rel)
	if rel == "." || rel == "" || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("invalid file path: %s", fileURL)
	}

	physicalPath := filepath.Join(ls.basePath, rel)
	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
