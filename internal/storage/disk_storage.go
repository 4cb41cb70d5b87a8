package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImageStorage keeps uploaded images and hands back the name they were stored under.
type ImageStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
	Remove(ctx context.Context, names ...string) error
	Dir() string
}

// maxStoredNameLen is the filename limit of common filesystems and of images.path.
const maxStoredNameLen = 255

// maxExtLen bounds how much of a suffix is treated as an extension worth keeping.
const maxExtLen = 16

type diskStorage struct {
	dir    string
	logger *zap.Logger
}

func NewDiskStorage(dir string, logger *zap.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &diskStorage{dir: dir, logger: logger.Named("storage")}, nil
}

func (s *diskStorage) Dir() string {
	return s.dir
}

// Save copies the upload to <dir>/<uuid>-<basename>.
func (s *diskStorage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %s: %w", file.Filename, err)
	}
	defer src.Close()

	prefix := uuid.New().String() + "-"
	name := prefix + sanitizeFilename(file.Filename, maxStoredNameLen-len(prefix))
	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("failed to close %s: %w", name, err)
	}

	s.logger.Debug("stored upload", zap.String("name", name), zap.Int64("size", file.Size))
	return name, nil
}

// Remove deletes stored files, ignoring ones already gone.
func (s *diskStorage) Remove(_ context.Context, names ...string) error {
	var errs []error
	for _, name := range names {
		err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// sanitizeFilename keeps a portable basename no longer than maxLen bytes,
// cutting the stem before the extension.
func sanitizeFilename(name string, maxLen int) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "image"
	}
	if len(name) <= maxLen {
		return name
	}

	ext := filepath.Ext(name)
	if len(ext) > maxExtLen || len(ext) >= maxLen {
		ext = ""
	}
	return name[:maxLen-len(ext)] + ext
}
