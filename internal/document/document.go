package document

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is used when a non-positive tab width is given
const DefaultTabWidth = 4

// maxLineBytes bounds a single line read by Open
const maxLineBytes = 16 * 1024 * 1024

// Document is an ordered, read-only sequence of lines
type Document struct {
	name     string
	lines    []Line
	tabWidth int
}

// Line is a single line of a document, without its line terminator
type Line struct {
	content  string
	tabWidth int
}

// New builds a document from already split lines
func New(name string, lines []string, tabWidth int) *Document {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	d := &Document{
		name:     name,
		lines:    make([]Line, 0, len(lines)),
		tabWidth: tabWidth,
	}
	for _, l := range lines {
		d.lines = append(d.lines, Line{content: l, tabWidth: tabWidth})
	}
	return d
}

// Empty returns a document with no lines
func Empty(name string, tabWidth int) *Document {
	return New(name, nil, tabWidth)
}

// Open reads the file at path into a document. Lines are split on '\n' and a
// trailing '\r' is dropped, so CRLF files render like LF files.
func Open(path string, tabWidth int) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return New(path, lines, tabWidth), nil
}

// Name returns the path the document was opened from, if any
func (d *Document) Name() string {
	return d.name
}

// LineCount returns the number of lines
func (d *Document) LineCount() int {
	return len(d.lines)
}

// IsEmpty reports whether the document has no lines at all
func (d *Document) IsEmpty() bool {
	return len(d.lines) == 0
}

// Line returns the line at index, or false when there is none
func (d *Document) Line(index int) (Line, bool) {
	if index < 0 || index >= len(d.lines) {
		return Line{}, false
	}
	return d.lines[index], true
}

// Content returns the raw text of the line
func (l Line) Content() string {
	return l.content
}

// Width returns the display width of the line with tabs expanded
func (l Line) Width() int {
	col := 0
	for _, r := range l.content {
		col += l.runeWidth(r, col)
	}
	return col
}

// Render returns the part of the line that is visible between display
// columns start (inclusive) and end (exclusive). Tabs expand to the next tab
// stop. A rune that does not fit entirely inside the window is dropped.
func (l Line) Render(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}

	var b strings.Builder
	col := 0
	for _, r := range l.content {
		if col >= end {
			break
		}
		w := l.runeWidth(r, col)
		if col >= start && col+w <= end {
			if r == '\t' {
				b.WriteString(strings.Repeat(" ", w))
			} else {
				b.WriteRune(r)
			}
		}
		col += w
	}
	return b.String()
}

func (l Line) runeWidth(r rune, col int) int {
	if r == '\t' {
		tw := l.tabWidth
		if tw <= 0 {
			tw = DefaultTabWidth
		}
		return tw - col%tw
	}
	return runewidth.RuneWidth(r)
}
