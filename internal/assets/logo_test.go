package assets

import (
	"archive/zip"
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPlaceholderLogo(t *testing.T) {
	data, err := PlaceholderLogo()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("placeholder is not a decodable PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 1379 || b.Dy() != 128 {
		t.Errorf("expected 1379x128 banner, got %dx%d", b.Dx(), b.Dy())
	}
}

func writeTestDocx(t *testing.T, media map[string][]byte) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range media {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "branded.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractLogo(t *testing.T) {
	small, err := PlaceholderLogo()
	if err != nil {
		t.Fatal(err)
	}
	big := make([]byte, maxLogoBytes+1)

	path := writeTestDocx(t, map[string][]byte{
		"word/document.xml":     []byte("<w:document/>"),
		"word/media/image1.png": big,
		"word/media/image2.png": small,
	})

	got, err := ExtractLogo(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, small) {
		t.Error("extracted the wrong media entry")
	}
}

func TestExtractLogo_NoCandidate(t *testing.T) {
	path := writeTestDocx(t, map[string][]byte{
		"word/document.xml":      []byte("<w:document/>"),
		"word/media/image1.jpeg": []byte("jpeg bytes"),
	})
	if _, err := ExtractLogo(path); err == nil {
		t.Error("expected error when no small PNG exists")
	}
}
