package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"tilde/internal/document"
	"tilde/internal/terminal"
)

// QuitMessage is shown once the user leaves the editor
const QuitMessage = "Successfully exited..."

// Document is the read side of a document the renderer needs
type Document interface {
	LineCount() int
	IsEmpty() bool
	Line(i int) (document.Line, bool)
}

// Row is one screen row as styled spans, already cut to the screen width
type Row struct {
	Spans []terminal.Span
}

// Text returns the row without styling
func (r Row) Text() string {
	var b strings.Builder
	for _, s := range r.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Renderer turns a document into screen rows
type Renderer struct {
	product         string
	version         string
	showLineNumbers bool
}

// NewRenderer creates a new renderer
func NewRenderer(product, version string, showLineNumbers bool) *Renderer {
	return &Renderer{
		product:         product,
		version:         version,
		showLineNumbers: showLineNumbers,
	}
}

// Rows returns the rows 0..height-2 of the screen. The last row is left to
// the caller and is never part of the result. Rows depends only on its
// arguments.
func (r *Renderer) Rows(doc Document, width, height int) []Row {
	if height < 2 || width < 1 {
		return nil
	}

	rows := make([]Row, 0, height-1)
	for y := 0; y < height-1; y++ {
		rows = append(rows, r.row(doc, y, width, height))
	}
	return rows
}

func (r *Renderer) row(doc Document, y, width, height int) Row {
	if line, ok := doc.Line(y); ok {
		var spans []terminal.Span
		if r.showLineNumbers {
			spans = append(spans, terminal.Span{Text: fmt.Sprintf("%d ", y), Role: terminal.RoleLineNumber})
		}
		spans = append(spans, terminal.Span{Text: line.Render(0, width), Role: terminal.RoleText})
		return fit(spans, width)
	}

	if doc.IsEmpty() && y == height/3 {
		return r.welcome(width)
	}

	return Row{Spans: []terminal.Span{{Text: "~", Role: terminal.RoleTilde}}}
}

// WelcomeMessage returns the banner text centered for width, starting with
// the tilde of an empty row and cut to width columns.
func (r *Renderer) WelcomeMessage(width int) string {
	return r.welcome(width).Text()
}

func (r *Renderer) welcome(width int) Row {
	msg := fmt.Sprintf("%s -- version %s", r.product, r.version)

	padding := 0
	if n := runewidth.StringWidth(msg); width > n {
		padding = (width - n) / 2
	}
	lead := "~"
	if padding > 1 {
		lead += strings.Repeat(" ", padding-1)
	}

	return fit([]terminal.Span{
		{Text: lead, Role: terminal.RoleTilde},
		{Text: msg, Role: terminal.RoleBanner},
	}, width)
}

// fit cuts spans so that together they span at most width columns
func fit(spans []terminal.Span, width int) Row {
	out := make([]terminal.Span, 0, len(spans))
	left := width
	for _, s := range spans {
		if left <= 0 {
			break
		}
		if w := runewidth.StringWidth(s.Text); w > left {
			s.Text = runewidth.Truncate(s.Text, left, "")
		}
		left -= runewidth.StringWidth(s.Text)
		if s.Text != "" {
			out = append(out, s)
		}
	}
	return Row{Spans: out}
}
