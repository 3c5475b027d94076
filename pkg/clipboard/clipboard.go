// Package clipboard copies text to the X11 clipboard through one of two
// external programs, xsel or xclip. The text is produced by echo and piped
// straight into the selected program's standard input.
package clipboard

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"cwdclip/pkg/errors"
	"cwdclip/pkg/logger"
)

// ErrNotFound is returned by LookPath when a program is absent from every
// search path directory.
var ErrNotFound = stderrors.New("not found in search path")

// Backend is a supported clipboard program.
type Backend int

const (
	XSel Backend = iota
	XClip
)

// Backends lists the supported programs in probe order.
var Backends = []Backend{XSel, XClip}

func (b Backend) String() string {
	return b.Program()
}

// Program returns the executable name of the backend.
func (b Backend) Program() string {
	switch b {
	case XSel:
		return "xsel"
	case XClip:
		return "xclip"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Args returns the fixed arguments that make the backend read standard
// input into the clipboard selection. The slice is freshly allocated.
func (b Backend) Args() []string {
	switch b {
	case XSel:
		return []string{"-b", "-i"}
	case XClip:
		return []string{"-selection", "c"}
	default:
		return nil
	}
}

// LookPath reports where program lives in searchPath, a list of directories
// joined by the platform list separator. Any non-directory entry with the
// right name counts as present.
func LookPath(program, searchPath string) (string, error) {
	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, program)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		return candidate, nil
	}
	return "", fmt.Errorf("%s: %w", program, ErrNotFound)
}

// Detect probes searchPath for each backend in priority order and returns a
// Writer for the first one present.
func Detect(searchPath string) (*Writer, error) {
	for _, b := range Backends {
		path, err := LookPath(b.Program(), searchPath)
		if err != nil {
			logger.Debug().Str("backend", b.String()).Msg("backend not on search path")
			continue
		}
		logger.Debug().Str("backend", b.String()).Str("path", path).Msg("selected clipboard backend")
		return NewWriter(b, path), nil
	}
	return nil, errors.NoBackendError()
}
