// Package archive manages the on-disk folder generated QR artifacts
// accumulate in: safe filenames, same-day collision suffixes, the dual
// PNG/PDF writes, and a compressed manifest indexing past generations.
package archive

import (
	"os"
	"path/filepath"
	"time"
)

// Entry records one successful generation. It lives twice: as the two
// files on disk and as a row in the manifest.
type Entry struct {
	Label     string    `json:"label"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	PNGPath   string    `json:"png_path"`
	PDFPath   string    `json:"pdf_path"`
	CreatedAt time.Time `json:"created_at"`
}

// Archive is a directory of generated artifacts plus its manifest.
type Archive struct {
	Dir string
}

func New(dir string) *Archive {
	return &Archive{Dir: dir}
}

// EnsureDir creates the archive directory if it does not exist yet.
func (a *Archive) EnsureDir() error {
	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return &FilesystemError{Op: "create archive directory", Path: a.Dir, Err: err}
	}
	return nil
}

// Exists reports whether name is already present in the archive. It is the
// taken predicate handed to ResolveBase.
func (a *Archive) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(a.Dir, name))
	return err == nil
}

// Path returns the absolute-or-relative location of name inside the
// archive, matching how the directory itself was specified.
func (a *Archive) Path(name string) string {
	return filepath.Join(a.Dir, name)
}

// WriteFile persists data under name and returns the written path.
func (a *Archive) WriteFile(name string, data []byte) (string, error) {
	path := a.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &FilesystemError{Op: "write", Path: path, Err: err}
	}
	return path, nil
}

// Remove deletes a file previously written this invocation. Used to roll
// back the PNG when the PDF write fails, so a failed run leaves nothing.
func (a *Archive) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return &FilesystemError{Op: "remove", Path: path, Err: err}
	}
	return nil
}
