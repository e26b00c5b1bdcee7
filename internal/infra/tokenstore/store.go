// Package tokenstore keeps Garmin session token files in a local directory
// through a gocloud blob bucket.
package tokenstore

import (
	"context"
	"os"

	"coach/config"
	"coach/internal/domain/service"
	"coach/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// ErrTokenNotFound is returned when the store holds no file with the given name.
var ErrTokenNotFound = errors.New("token file not found")

type dirStore struct {
	dir string
}

// New creates the directory-backed token store at garmin.tokenStore.
func New(cfg *config.Config) service.TokenStore {
	return NewDir(cfg.Garmin.TokenStore)
}

// NewDir creates a token store rooted at dir. Nothing is created on disk
// until the first write.
func NewDir(dir string) service.TokenStore {
	return &dirStore{dir: dir}
}

func (s *dirStore) Location() string {
	return s.dir
}

func (s *dirStore) Exists(_ context.Context) bool {
	info, err := os.Stat(s.dir)

	return err == nil && info.IsDir()
}

func (s *dirStore) ReadFile(ctx context.Context, name string) ([]byte, error) {
	bucket, err := s.open(false)
	if err != nil {
		return nil, err
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, name)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(ErrTokenNotFound, "read %s", name)
		}

		return nil, errors.Wrapf(err, "read %s", name)
	}

	return data, nil
}

func (s *dirStore) WriteFile(ctx context.Context, name string, data []byte) error {
	bucket, err := s.open(true)
	if err != nil {
		return err
	}
	defer bucket.Close()

	if err := bucket.WriteAll(ctx, name, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}

	return nil
}

func (s *dirStore) open(create bool) (*blob.Bucket, error) {
	bucket, err := fileblob.OpenBucket(s.dir, &fileblob.Options{CreateDir: create})
	if err != nil {
		return nil, errors.Wrapf(err, "open token store %s", s.dir)
	}

	return bucket, nil
}
