package fp

import (
	"fmt"
	"os"
	"path/filepath"
)

// Generate builds a footprint by running build, then writes it to
// <name>.fp in the current directory. The file is written exactly once,
// and only when build returns nil: on error (or panic) the partial
// footprint is discarded and no file is created or truncated.
func Generate(name string, build func(*Footprint) error) error {
	return GenerateIn(".", name, build)
}

// GenerateIn is Generate writing into the given directory.
func GenerateIn(dir, name string, build func(*Footprint) error) error {
	f, err := New(name)
	if err != nil {
		return err
	}
	if err := build(f); err != nil {
		return fmt.Errorf("fp: building %s: %w", name, err)
	}
	return f.WriteFile(filepath.Join(dir, name+".fp"))
}

// Library writes a suite of related footprints into one directory.
type Library struct {
	dir     string
	written []string
}

// NewLibrary creates dir if needed and returns a Library writing into
// it.
func NewLibrary(dir string) (*Library, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("fp: creating library directory: %w", err)
	}
	return &Library{dir: dir}, nil
}

// Generate builds and writes one footprint into the library directory.
func (l *Library) Generate(name string, build func(*Footprint) error) error {
	if err := GenerateIn(l.dir, name, build); err != nil {
		return err
	}
	l.written = append(l.written, name+".fp")
	return nil
}

// Written lists the files produced so far, in generation order.
func (l *Library) Written() []string {
	out := make([]string, len(l.written))
	copy(out, l.written)
	return out
}

// Dir returns the library's output directory.
func (l *Library) Dir() string { return l.dir }
