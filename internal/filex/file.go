// Package filex holds small file helpers used by the CLI: turning image files
// into data URIs for project payloads and preparing local state directories.
package filex

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSize caps a single image payload read from disk.
const MaxImageSize = 8 << 20

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadDataURI reads an image file and encodes it as
// "data:<mime>;base64,<payload>". The MIME type comes from the file
// extension, falling back to content sniffing; non-image files are rejected.
func ReadDataURI(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() > MaxImageSize {
		return "", fmt.Errorf("%s is larger than %d bytes", path, MaxImageSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	if mt == "" {
		mt = http.DetectContentType(data)
		if i := strings.IndexByte(mt, ';'); i >= 0 {
			mt = mt[:i]
		}
	}
	if !strings.HasPrefix(mt, "image/") {
		return "", fmt.Errorf("%s is not an image (%s)", path, mt)
	}

	return EncodeDataURI(mt, data), nil
}

// ErrNotDataURI is returned by ParseDataURI for anything that is not a
// base64 data URI.
var ErrNotDataURI = errors.New("not a base64 data URI")

// ParseDataURI splits "data:<mime>;base64,<payload>" into its MIME type and
// decoded bytes.
func ParseDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	mt, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, ErrNotDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrNotDataURI, err)
	}
	if mt == "" {
		mt = "text/plain"
	}
	return mt, data, nil
}

// EncodeDataURI is the inverse of ParseDataURI.
func EncodeDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
