// Package photo is the image input boundary: it turns a file on disk
// into an embeddable data-URL payload.
package photo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// ErrNotImage marks content whose sniffed media type is not image/*.
// Callers ignore such selections silently rather than surfacing an error.
var ErrNotImage = errors.New("not an image")

// Read loads the file at path, verifies it is an image by content
// sniffing, and returns it as a data URL.
func Read(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}

	mime := http.DetectContentType(raw)
	if !strings.HasPrefix(mime, "image/") {
		return "", ErrNotImage
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
