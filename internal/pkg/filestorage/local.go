package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/srkad/placement-portal/internal/pkg/logger"
)

// LocalStorage handles saving uploaded files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory for all uploads, served at /uploads
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// BasePath returns the storage root directory.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// SaveFile stores an uploaded file under the given subdirectory and returns
// the relative path it is served at (always forward-slashed, e.g.
// "uploads/resumes/1693216000123-9f3b….pdf"). Filenames combine a millisecond
// timestamp with a random suffix to avoid collisions; a missing extension is
// forced to ".pdf".
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dir := ls.basePath
	if subDir != "" {
		dir = filepath.Join(ls.basePath, subDir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", dir).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = ".pdf"
	}
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)

	dstPath := filepath.Join(dir, filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	accessiblePath := path.Join("uploads", filepath.ToSlash(subDir), filename)
	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("saved_as", filename).
		Str("accessible_path", accessiblePath).
		Msg("File saved")
	return accessiblePath, nil
}

// DeleteFile removes a stored file given the relative path recorded in the
// database (e.g. "uploads/resumes/name.pdf"). A missing file is not an error.
func (ls *LocalStorage) DeleteFile(relPath string) error {
	if relPath == "" {
		return nil
	}

	rest, ok := strings.CutPrefix(filepath.ToSlash(relPath), "uploads/")
	if !ok || rest == "" || strings.Contains(rest, "..") {
		return fmt.Errorf("invalid file path: %s", relPath)
	}

	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(rest))
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}
