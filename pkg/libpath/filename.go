// pkg/libpath/filename.go
package libpath

import (
	"path/filepath"
	"strings"
)

// SplitFileAtDot splits a file name at its first dot that is not the leading
// character. filepath.Ext splits at the last dot, which turns
// "libglogd.so.0.6.0" into "libglogd.so.0.6" and ".0".
//
// ok is false when there is no such dot, in which case before is the whole
// name. The name ".." is never split.
func SplitFileAtDot(name string) (before, after string, ok bool) {
	if name == ".." || len(name) < 2 {
		return name, "", false
	}

	i := strings.IndexByte(name[1:], '.')
	if i < 0 {
		return name, "", false
	}
	i++

	return name[:i], name[i+1:], true
}

// FileName returns the final component of path, or ErrMalformedPath when
// the path has none (empty, "/", "." or "..").
func FileName(path string) (string, error) {
	if path == "" {
		return "", &PathError{Path: path, Err: ErrMalformedPath}
	}

	name := filepath.Base(path)
	switch name {
	case string(filepath.Separator), ".", "..":
		return "", &PathError{Path: path, Err: ErrMalformedPath}
	}

	return name, nil
}

// FilePrefix returns the final component of path up to its first
// non-leading dot (e.g., "libprotobufd" for libprotobufd.so.3.19.4.0)
func FilePrefix(path string) (string, error) {
	name, err := FileName(path)
	if err != nil {
		return "", err
	}

	before, _, _ := SplitFileAtDot(name)
	return before, nil
}

// IsUnder reports whether dir is root or lies below it. The comparison is
// made on whole path components, so /usr/library is not under /usr/lib.
func IsUnder(dir, root string) bool {
	dir = filepath.Clean(dir)
	root = filepath.Clean(root)

	if dir == root {
		return true
	}
	if root == string(filepath.Separator) {
		return filepath.IsAbs(dir)
	}

	return strings.HasPrefix(dir, root+string(filepath.Separator))
}
