package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrUnsupportedType is returned for uploads whose extension is not an
// allowed image type. It is checked before anything is written to disk.
var ErrUnsupportedType = errors.New("unsupported image type")

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// PhotoStore writes uploaded employee photos into a single flat directory.
// Stored names are derived from the roll number plus the upload time, so a
// stored filename alone is enough to locate or remove the file later.
type PhotoStore struct {
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

// NewPhotoStore creates a PhotoStore rooted at dir.
func NewPhotoStore(dir string, logger *zap.Logger) *PhotoStore {
	return &PhotoStore{dir: dir, logger: logger, now: time.Now}
}

// Allowed reports whether the upload filename carries an allowed image
// extension. The comparison is case-insensitive.
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Filename derives the stored name for an upload: <roll>_<unix-seconds><ext>,
// with anything outside [A-Za-z0-9_.-] squashed so the result can never name
// a path outside the store.
func (p *PhotoStore) Filename(rollNumber, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	name := fmt.Sprintf("%s_%d%s", rollNumber, p.now().Unix(), ext)
	name = unsafeChars.ReplaceAllString(name, "_")
	return strings.TrimLeft(name, "._-")
}

// Save validates the upload's extension and writes it into the store,
// returning the generated filename. Nothing is written for an unsupported
// type.
func (p *PhotoStore) Save(file *multipart.FileHeader, rollNumber string) (string, error) {
	if !Allowed(file.Filename) {
		return "", ErrUnsupportedType
	}

	name := p.Filename(rollNumber, file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(p.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}

	return name, nil
}

// Remove deletes a stored photo best-effort. A missing file is not an error;
// other filesystem failures are logged and swallowed, never surfaced.
func (p *PhotoStore) Remove(name string) {
	if name == "" {
		return
	}
	path := filepath.Join(p.dir, filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.Warn("failed to remove photo file",
			zap.String("file", name),
			zap.Error(err),
		)
	}
}

// Path returns the on-disk location of a stored photo filename.
func (p *PhotoStore) Path(name string) string {
	return filepath.Join(p.dir, filepath.Base(name))
}
