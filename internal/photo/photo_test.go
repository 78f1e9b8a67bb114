package photo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pngHeader is the 8-byte PNG signature plus enough bytes for sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadPNG(t *testing.T) {
	path := writeFile(t, "meal.png", pngHeader)

	payload, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !strings.HasPrefix(payload, "data:image/png;base64,") {
		t.Errorf("payload = %q, want data:image/png prefix", payload)
	}
}

func TestReadNonImage(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("lunch was great"))

	_, err := Read(path)
	if !errors.Is(err, ErrNotImage) {
		t.Fatalf("err = %v, want ErrNotImage", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, ErrNotImage) {
		t.Error("missing file should not be classified as non-image")
	}
}
