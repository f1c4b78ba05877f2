package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeTextUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}
	got, err := DecodeText("notes.txt", content)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if got != "A\r\n" {
		t.Fatalf("DecodeText returned %q, want %q", got, "A\r\n")
	}
}

func TestDecodeTextUTF16BE(t *testing.T) {
	content := []byte{0xFE, 0xFF, 0x00, 0x68, 0x00, 0x69}
	got, err := DecodeText("notes.txt", content)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if got != "hi" {
		t.Fatalf("DecodeText returned %q, want %q", got, "hi")
	}
}

func TestDecodeTextStripsUTF8BOM(t *testing.T) {
	got, err := DecodeText("a.md", []byte("\xEF\xBB\xBFhello"))
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if got != "hello" {
		t.Fatalf("DecodeText returned %q, want %q", got, "hello")
	}
}

func TestDecodeTextRejectsBinary(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content []byte
	}{
		{"nul byte", "data.txt", []byte("abc\x00def")},
		{"invalid utf8", "data.txt", []byte{0xC3, 0x28, 0x41}},
		{"binary extension", "image.PNG", []byte("looks like text")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeText(tt.path, tt.content)
			if !errors.Is(err, ErrNotText) {
				t.Fatalf("expected ErrNotText, got %v", err)
			}
		})
	}
}

func TestDecodeTextAcceptsEmptyContent(t *testing.T) {
	got, err := DecodeText("empty.txt", nil)
	if err != nil || got != "" {
		t.Fatalf("DecodeText(empty) = (%q, %v), want (\"\", nil)", got, err)
	}
}

func TestReadTextReportsMissingFile(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReadTextReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	got, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != "one\ntwo\n" {
		t.Fatalf("ReadText returned %q", got)
	}
}

func TestReadTextWrapsDecodeErrorWithPath(t *testing.T) {
	original := readFile
	t.Cleanup(func() { readFile = original })
	readFile = func(string) ([]byte, error) {
		return []byte{0x00, 0x01}, nil
	}

	_, err := ReadText("blob.txt")
	if !errors.Is(err, ErrNotText) {
		t.Fatalf("expected ErrNotText, got %v", err)
	}
	if got := err.Error(); got != "blob.txt: not a text file" {
		t.Fatalf("unexpected error text %q", got)
	}
}
