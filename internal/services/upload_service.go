package services

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedImageExtensions is the set of file extensions accepted for product
// images, matched case-insensitively.
var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// UploadService stores uploaded product images under a public directory and
// hands back root-relative URLs for the catalog.
type UploadService struct {
	dir       string
	urlPrefix string
}

// NewUploadService creates a new UploadService writing into dir and serving
// the files under urlPrefix (e.g. "/static/uploads").
func NewUploadService(dir, urlPrefix string) *UploadService {
	return &UploadService{
		dir:       dir,
		urlPrefix: urlPrefix,
	}
}

// Store validates the file's extension and writes it to the upload directory
// under a freshly generated name. The original base name is never reused, so
// two uploads cannot collide and a crafted filename cannot escape the
// directory. Returns the public URL path of the stored file.
func (s *UploadService) Store(file io.Reader, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if ext == "" || !allowedImageExtensions[ext] {
		return "", &ValidationError{
			Field:   "image_file",
			Message: "image must be one of: png, jpg, jpeg, gif, webp",
		}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory %s: %w", s.dir, err)
	}

	filename := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file %s: %w", filename, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write upload file %s: %w", filename, err)
	}

	return path.Join(s.urlPrefix, filename), nil
}
