package files

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type memoryStore struct {
	objects map[string]string
	opened  []string
}

func (m *memoryStore) Open(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	key := bucket + "/" + object
	m.opened = append(m.opened, key)
	data, ok := m.objects[key]
	if !ok {
		return nil, errors.New("The specified key does not exist.")
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

func TestLoader_Builtin(t *testing.T) {
	code, err := NewLoaderWithStore(nil).Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !strings.Contains(code, "longestPalindrome") {
		t.Fatalf("expected the built-in solution, got %q", code)
	}
}

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cpp")
	if err := os.WriteFile(path, []byte("int main() {}"), 0o600); err != nil {
		t.Fatal(err)
	}
	code, err := NewLoaderWithStore(nil).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if code != "int main() {}" {
		t.Fatalf("unexpected code %q", code)
	}

	blank := filepath.Join(dir, "blank.cpp")
	if err := os.WriteFile(blank, []byte("  \n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoaderWithStore(nil).Load(context.Background(), blank); !errors.Is(err, ErrEmptySource) {
		t.Fatalf("expected empty source error, got %v", err)
	}
	if _, err := NewLoaderWithStore(nil).Load(context.Background(), filepath.Join(dir, "missing.cpp")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoader_Object(t *testing.T) {
	store := &memoryStore{objects: map[string]string{"solutions/5/main.cpp": "class Solution {};"}}
	loader := NewLoaderWithStore(store)

	code, err := loader.Load(context.Background(), "s3://solutions/5/main.cpp")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if code != "class Solution {};" {
		t.Fatalf("unexpected code %q", code)
	}
	if len(store.opened) != 1 || store.opened[0] != "solutions/5/main.cpp" {
		t.Fatalf("unexpected objects opened: %v", store.opened)
	}

	for _, source := range []string{"s3://solutions", "s3:///main.cpp", "s3://solutions/"} {
		if _, err := loader.Load(context.Background(), source); err == nil {
			t.Fatalf("expected an error for %q", source)
		}
	}
	if _, err := loader.Load(context.Background(), "s3://solutions/missing.cpp"); err == nil {
		t.Fatalf("expected an error for a missing object")
	}
}

func TestLoader_ObjectWithoutStorage(t *testing.T) {
	loader, err := NewLoader(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loader.Load(context.Background(), "s3://solutions/main.cpp"); !errors.Is(err, ErrStorageDisabled) {
		t.Fatalf("expected storage disabled error, got %v", err)
	}
}

func TestLoader_TooLarge(t *testing.T) {
	store := &memoryStore{objects: map[string]string{"b/big": strings.Repeat("a", maxSourceSize+1)}}
	if _, err := NewLoaderWithStore(store).Load(context.Background(), "s3://b/big"); err == nil {
		t.Fatalf("expected an error for an oversized source")
	}
}

func TestNewLoader_MinIO(t *testing.T) {
	loader, err := NewLoader(Config{Url: "127.0.0.1:9000", Login: "minio", Password: "minio123"})
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	if loader.store == nil {
		t.Fatalf("expected an object store when a url is configured")
	}
}
