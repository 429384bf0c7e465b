// Package disk stores uploaded image assets on the local filesystem under a
// single uploads directory, served back at /uploads/.
package disk

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tashu/studio/internal/domain/model"
	"github.com/tashu/studio/internal/domain/port/driven"
)

// allowedExtensions limits uploads to the image types the site renders.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Compile-time interface satisfaction check.
var _ driven.AssetStore = (*AssetStore)(nil)

// AssetStore writes uploaded assets to dir with collision-free names.
type AssetStore struct {
	dir    string
	logger *slog.Logger
}

// NewAssetStore creates the uploads directory if needed.
func NewAssetStore(dir string, logger *slog.Logger) (*AssetStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %q: %w", dir, err)
	}
	return &AssetStore{dir: dir, logger: logger}, nil
}

// Save stores the asset under a millisecond-timestamp-prefixed name and
// returns the web path recorded on the owning record.
func (s *AssetStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", &model.ValidationError{Field: "image", Reason: "only image files are allowed"}
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(filepath.Base(filename)))
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create asset %q: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write asset %q: %w", name, err)
	}

	s.logger.Info("asset stored", "name", name)
	return "/uploads/" + name, nil
}

// sanitizeFilename strips everything that has no business in a served file
// name; the timestamp prefix keeps the result unique.
func sanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, ch := range name {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == '.' || ch == '-' || ch == '_':
			b.WriteRune(ch)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
