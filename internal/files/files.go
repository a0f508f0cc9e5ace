package files

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const (
	objectScheme  = "s3://"
	maxSourceSize = 1 << 20
)

var (
	ErrEmptySource     = errors.New("source is empty")
	ErrStorageDisabled = errors.New("object storage is not configured")
)

type Config struct {
	Url      string
	Login    string
	Password string
	SSL      bool
}

// ObjectStore opens objects by bucket and name.
type ObjectStore interface {
	Open(ctx context.Context, bucket, object string) (io.ReadCloser, error)
}

type minioStore struct {
	cl *minio.Client
}

func (s *minioStore) Open(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	return s.cl.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
}

// Loader resolves the solution source: the built-in solution, a local file
// or an object in MinIO.
type Loader struct {
	store ObjectStore
}

// NewLoader connects to object storage when cfg.Url is set.
func NewLoader(cfg Config) (*Loader, error) {
	if cfg.Url == "" {
		return &Loader{}, nil
	}
	client, err := minio.New(cfg.Url, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Login, cfg.Password, ""),
		Secure: cfg.SSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}
	return &Loader{store: &minioStore{cl: client}}, nil
}

func NewLoaderWithStore(store ObjectStore) *Loader {
	return &Loader{store: store}
}

func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	var (
		code string
		err  error
	)
	switch {
	case source == "":
		code = DefaultSolution
	case strings.HasPrefix(source, objectScheme):
		code, err = l.loadObject(ctx, strings.TrimPrefix(source, objectScheme))
	default:
		code, err = loadFile(source)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(code) == "" {
		return "", errors.Wrapf(ErrEmptySource, "source %q", source)
	}
	return code, nil
}

func (l *Loader) loadObject(ctx context.Context, path string) (string, error) {
	if l.store == nil {
		return "", ErrStorageDisabled
	}
	bucket, object, ok := strings.Cut(path, "/")
	if !ok || bucket == "" || object == "" {
		return "", errors.Errorf("invalid object path %q, expected s3://bucket/object", path)
	}
	obj, err := l.store.Open(ctx, bucket, object)
	if err != nil {
		return "", errors.Wrapf(err, "failed to get object %s/%s", bucket, object)
	}
	defer obj.Close()
	return readLimited(obj)
}

func loadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to open source file")
	}
	defer f.Close()
	return readLimited(f)
}

func readLimited(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSourceSize+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to read source")
	}
	if len(data) > maxSourceSize {
		return "", errors.Errorf("source is larger than %d bytes", maxSourceSize)
	}
	return string(data), nil
}
