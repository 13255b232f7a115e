package lambda

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
)

// Loader opens named resources.
type Loader interface {
	Open(name string) (io.ReadCloser, error)
}

// ResourceDir is the directory FSLoader resolves names under.
const ResourceDir = "res"

// FSLoader opens resources from ResourceDir inside an fs.FS, typically an
// embed.FS or os.DirFS.
type FSLoader struct {
	FS fs.FS
}

// NewFSLoader returns a loader over fsys.
func NewFSLoader(fsys fs.FS) FSLoader {
	return FSLoader{FS: fsys}
}

// Open opens res/name.
func (l FSLoader) Open(name string) (io.ReadCloser, error) {
	p := path.Join(ResourceDir, name)
	f, err := l.FS.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open resource %s: %w", name, err)
	}
	return f, nil
}

// ReadAll reads the whole resource.
func ReadAll(l Loader, name string) ([]byte, error) {
	rc, err := l.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read resource %s: %w", name, err)
	}
	return data, nil
}

// exit is replaced in tests.
var exit = os.Exit

// MustOpen opens a resource, or logs the failure and terminates the
// process. Resources are packaged with the program, so a missing one is
// unrecoverable.
func MustOpen(l Loader, name string) io.ReadCloser {
	rc, err := l.Open(name)
	if err != nil {
		slog.Error("Failed to open resource", "name", name, "error", err)
		exit(1)
		return nil
	}
	return rc
}
