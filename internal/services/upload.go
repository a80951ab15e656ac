package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"alfredoptarigan/resume-screener/internal/models"
)

type UploadReader interface {
	ReadUpload(file *multipart.FileHeader) (*models.Document, error)
}

type uploadReader struct {
	maxFileSize int64
}

func NewUploadReader(maxFileSize int64) UploadReader {
	return &uploadReader{
		maxFileSize: maxFileSize,
	}
}

// ReadUpload implements UploadReader. The file is held in memory only.
func (u *uploadReader) ReadUpload(file *multipart.FileHeader) (*models.Document, error) {
	if file.Size > u.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, file.Size, u.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, u.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > u.maxFileSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, u.maxFileSize)
	}

	return DetectDocument(file.Filename, file.Header.Get("Content-Type"), data)
}

// DocumentFromFile loads a local resume or job description file.
func DocumentFromFile(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return DetectDocument(filepath.Base(path), "", data)
}

// DetectDocument resolves the media type from the declared content type,
// falling back to the file extension, and confirms it against the bytes.
func DetectDocument(filename, declaredMime string, data []byte) (*models.Document, error) {
	declaredMime = strings.TrimSpace(strings.Split(declaredMime, ";")[0])

	mediaType, ok := models.MediaTypeFromMime(declaredMime)
	if !ok {
		if declaredMime != "" && declaredMime != "application/octet-stream" {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, declaredMime)
		}

		mediaType, ok = mediaTypeFromExtension(filename)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, filepath.Ext(filename))
		}
	}

	detected := mimetype.Detect(data)
	switch mediaType {
	case models.MediaTypePDF:
		if !detected.Is(models.MimePDF) {
			return nil, fmt.Errorf("%w: declared pdf, content is %s", ErrUnsupportedMediaType, detected.String())
		}
	case models.MediaTypeDOCX:
		// Some writers order zip entries so only the container is recognized.
		if !detected.Is(models.MimeDOCX) && !detected.Is("application/zip") {
			return nil, fmt.Errorf("%w: declared docx, content is %s", ErrUnsupportedMediaType, detected.String())
		}
	}

	return &models.Document{
		Filename:  filename,
		MediaType: mediaType,
		Data:      data,
	}, nil
}

func mediaTypeFromExtension(filename string) (models.MediaType, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return models.MediaTypePDF, true
	case ".docx":
		return models.MediaTypeDOCX, true
	default:
		return "", false
	}
}
