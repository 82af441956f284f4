package archive

import (
	"fmt"
)

// FilesystemError wraps an I/O failure touching the archive directory so
// callers can map it to a dedicated exit code. The underlying OS error is
// preserved verbatim.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
