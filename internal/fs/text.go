package fs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ErrNotText is returned for content that cannot be shown as text: known
// binary formats, NUL bytes, or bytes that are not valid UTF-8.
var ErrNotText = errors.New("not a text file")

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

var binaryExtensions = map[string]struct{}{
	".7z":    {},
	".avi":   {},
	".bin":   {},
	".bmp":   {},
	".bz2":   {},
	".class": {},
	".dll":   {},
	".dylib": {},
	".exe":   {},
	".gif":   {},
	".gz":    {},
	".ico":   {},
	".iso":   {},
	".jar":   {},
	".jpeg":  {},
	".jpg":   {},
	".mp3":   {},
	".mp4":   {},
	".o":     {},
	".pdf":   {},
	".png":   {},
	".so":    {},
	".tar":   {},
	".tgz":   {},
	".wasm":  {},
	".xz":    {},
	".zip":   {},
}

var readFile = os.ReadFile

// ReadText reads the file at path and returns its content as UTF-8.
func ReadText(path string) (string, error) {
	content, err := readFile(path)
	if err != nil {
		return "", err
	}
	text, err := DecodeText(path, content)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// DecodeText converts raw file content to UTF-8. A UTF-8 byte order mark is
// dropped and BOM-marked UTF-16 is transcoded. The path only serves to reject
// well-known binary extensions before the content is inspected.
func DecodeText(path string, content []byte) (string, error) {
	if looksBinaryByExtension(path) {
		return "", ErrNotText
	}

	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		content = content[3:]
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	}

	if bytes.IndexByte(content, 0x00) != -1 || !utf8.Valid(content) {
		return "", ErrNotText
	}
	return string(content), nil
}

func looksBinaryByExtension(path string) bool {
	if path == "" {
		return false
	}
	_, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotText, err)
	}
	return string(out), nil
}
