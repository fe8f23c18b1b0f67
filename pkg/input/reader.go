// pkg/input/reader.go
package input

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// Stdin is the path that selects standard input
const Stdin = "-"

// Read returns the contents of the generated library list at path.
// Reading "-" reads standard input. Files ending in .xz or .gz are
// decompressed.
func Read(path string) (string, error) {
	if path == Stdin {
		return ReadFrom(os.Stdin, "")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening library list: %w", err)
	}
	defer f.Close()

	return ReadFrom(f, path)
}

// ReadFrom reads a library list from r. The name selects the decompression
// the same way Read does.
func ReadFrom(r io.Reader, name string) (string, error) {
	src := r

	// Handle different compression formats
	if strings.HasSuffix(name, ".xz") {
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("creating xz reader: %w", err)
		}
		src = xzReader
	} else if strings.HasSuffix(name, ".gz") {
		gzReader, err := gzip.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("creating gzip reader: %w", err)
		}
		defer gzReader.Close()
		src = gzReader
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("reading library list: %w", err)
	}

	return string(data), nil
}
