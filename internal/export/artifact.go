package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Artifact is a single generated output file. Artifacts are immutable once
// written and are identified to callers by filename only.
type Artifact struct {
	Filename string `json:"filename"`
	Path     string `json:"-"`
	Format   Format `json:"format"`
}

// Store manages the transient directory that export artifacts are written
// to. The directory is created lazily; concurrent creation is idempotent.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store root.
func (s *Store) Dir() string { return s.dir }

func (s *Store) ensure() error {
	return os.MkdirAll(s.dir, 0o755)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func sanitizeName(name string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "_")
}

// NewArtifact reserves a uniquely named file for a render. The name is
// timestamp-qualified and carries a random suffix so two renders of the same
// product never collide.
func (s *Store) NewArtifact(prefix, productName string, format Format) (*Artifact, error) {
	if err := s.ensure(); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s_%d_%s.%s",
		prefix,
		sanitizeName(productName),
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		format,
	)

	return &Artifact{
		Filename: filename,
		Path:     filepath.Join(s.dir, filename),
		Format:   format,
	}, nil
}

// ErrBadFilename is returned by Resolve for names that do not denote a file
// directly inside the store.
var ErrBadFilename = errors.New("invalid artifact filename")

// ErrArtifactNotFound is returned by Resolve when no such artifact exists.
var ErrArtifactNotFound = errors.New("artifact not found")

// Resolve maps a caller-supplied filename to a path inside the store,
// rejecting traversal attempts.
func (s *Store) Resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", ErrBadFilename
	}

	path := filepath.Join(s.dir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrArtifactNotFound
	}
	return path, nil
}
