// Package document builds the text a viewer session displays: the ordered
// concatenation of every readable input file.
package document

import (
	"strings"

	fsutil "github.com/kk-code-lab/catter/internal/fs"
	"go.uber.org/zap"
)

// Document is an immutable, ordered sequence of text lines. Line order is
// file order followed by in-file order.
type Document struct {
	text  string
	lines []string
}

// New builds a Document from already concatenated text.
func New(text string) Document {
	return Document{text: text, lines: splitLines(text)}
}

// Text returns the concatenated file content exactly as read.
func (d Document) Text() string {
	return d.text
}

// LineCount returns the number of lines in the document.
func (d Document) LineCount() int {
	return len(d.lines)
}

// Slice returns lines [start, end). The result must not be modified.
func (d Document) Slice(start, end int) []string {
	return d.lines[start:end:end]
}

// Aggregate reads paths in order and concatenates the ones that can be read
// as text. Files that are missing, unreadable, or binary are skipped. A file
// whose last line has no newline is terminated before the next one is
// appended, so lines never run across file boundaries.
func Aggregate(paths []string, log *zap.Logger) Document {
	if log == nil {
		log = zap.NewNop()
	}

	var builder strings.Builder
	for _, path := range paths {
		text, err := fsutil.ReadText(path)
		if err != nil {
			log.Debug("skipping input file", zap.String("path", path), zap.Error(err))
			continue
		}
		if text == "" {
			continue
		}
		if builder.Len() > 0 && !strings.HasSuffix(builder.String(), "\n") {
			builder.WriteByte('\n')
		}
		builder.WriteString(text)
	}

	doc := New(builder.String())
	log.Debug("document assembled",
		zap.Int("files", len(paths)),
		zap.Int("lines", doc.LineCount()),
		zap.Int("bytes", len(doc.text)),
	)
	return doc
}

// splitLines separates text on '\n' and drops one trailing '\r' per line.
// A newline at the very end does not start another line, so "a\nb\n" has
// two lines and "" has none.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
