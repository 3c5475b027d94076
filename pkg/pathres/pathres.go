// Package pathres turns the working directory and an optional argument into
// the path that gets copied.
package pathres

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"cwdclip/pkg/errors"
)

const (
	CurrentToken = "."
	ParentToken  = ".."
)

// Current returns the process working directory.
func Current() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.ResolutionError("cannot determine working directory", err)
	}
	return cwd, nil
}

// Resolve computes the target path for cwd and at most one argument.
//
//	no argument or "."  cwd unchanged
//	".."                parent of cwd; the root is its own parent
//	absolute path       the argument, cleaned
//	anything else       cwd joined with the argument
func Resolve(cwd string, args []string) (string, error) {
	if len(args) > 1 {
		return "", errors.ValidationError(fmt.Sprintf("expected at most one path, got %d", len(args)))
	}
	if cwd == "" || !filepath.IsAbs(cwd) {
		return "", errors.ResolutionError(fmt.Sprintf("working directory %q is not an absolute path", cwd), nil)
	}

	resolved := cwd
	if len(args) == 1 {
		switch arg := args[0]; {
		case arg == "" || arg == CurrentToken:
		case arg == ParentToken:
			resolved = Parent(cwd)
		case filepath.IsAbs(arg):
			resolved = filepath.Clean(arg)
		default:
			resolved = filepath.Join(cwd, arg)
		}
	}

	if !utf8.ValidString(resolved) {
		return "", errors.ResolutionError(fmt.Sprintf("path %q is not valid UTF-8 text", resolved), nil)
	}
	return resolved, nil
}

// Parent drops the last element of an absolute path.
func Parent(dir string) string {
	return filepath.Dir(filepath.Clean(dir))
}
