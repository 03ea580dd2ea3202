package values

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"object-manager/feature/objects"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store persists arbitrary in-memory values as stored objects.
//
// A value is serialized to a uniquely-named temporary local file, uploaded
// through the object facade with a fixed binary content type, and the file
// is removed once the upload succeeds. Retrieval is the inverse. The
// operations are not transactional: a failed upload leaves the staged file
// behind for an external cleanup sweep.
type Store struct {
	objects *objects.Service
	tempDir string
	logger  *zap.Logger
}

// NewStore creates a value store on top of the object service.
func NewStore(svc *objects.Service, tempDir string, logger *zap.Logger) *Store {
	return &Store{
		objects: svc,
		tempDir: tempDir,
		logger:  logger,
	}
}

// tempPath returns a collision-free staging path. Uniqueness comes from the
// random name; nothing guards a partially written file against readers.
func (s *Store) tempPath() string {
	dir := s.tempDir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, uuid.NewString()+".bin")
}

// Put serializes value and stores it at the virtual path. Tag values go
// through the same diacritic normalization as file uploads.
func (s *Store) Put(ctx context.Context, basepath, identifier string, value any, tags map[string]string) error {
	staged := s.tempPath()

	f, err := os.Create(staged)
	if err != nil {
		return fmt.Errorf("failed to create staging file: %w", err)
	}
	if err := Encode(f, value); err != nil {
		f.Close()
		os.Remove(staged)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(staged)
		return fmt.Errorf("failed to flush staging file: %w", err)
	}

	if err := s.objects.PutFile(ctx, basepath, identifier, staged, ContentType, tags); err != nil {
		// The staged file stays behind; an external sweep bounds the leak.
		return err
	}
	os.Remove(staged)

	s.logger.Info("Stored value",
		zap.String("basepath", basepath),
		zap.String("identifier", identifier),
	)
	return nil
}

// Get retrieves the value at the virtual path into out, which must be a
// non-nil pointer to the same type that was stored. It reports whether the
// value existed; a missing object yields (false, nil).
func (s *Store) Get(ctx context.Context, basepath, identifier string, out any) (bool, error) {
	staged := s.tempPath()

	desc, err := s.objects.GetFile(ctx, basepath, identifier, staged)
	if err != nil {
		return false, err
	}
	if desc == nil {
		return false, nil
	}
	defer os.Remove(staged)

	f, err := os.Open(staged)
	if err != nil {
		return false, fmt.Errorf("failed to open staged download: %w", err)
	}
	defer f.Close()

	if err := Decode(f, out); err != nil {
		return false, err
	}

	s.logger.Info("Retrieved value",
		zap.String("basepath", basepath),
		zap.String("identifier", identifier),
	)
	return true, nil
}

// Delete removes the value's backing object. Semantics match the object
// facade's Delete, including the not-found baseline.
func (s *Store) Delete(ctx context.Context, basepath, identifier string) (bool, error) {
	return s.objects.Delete(ctx, basepath, identifier)
}
