// Package markdown writes rendered diagrams as markdown documents and reads
// mermaid code fences back out of markdown files.
//
// [Document] produces the render-to-file format, a heading followed by a
// single mermaid fence. [Blocks] accepts any markdown and returns each
// mermaid fence it contains, so a file written by [WriteFile] reads back
// with the same title and diagram text.
package markdown

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/matzehuels/ariel/pkg/errors"
)

// Language is the fence info string that marks a diagram.
const Language = "mermaid"

// DefaultTitle is used when a diagram has no title.
const DefaultTitle = "Graph"

// Document returns "# <title>\n```mermaid\n<diagram>\n```\n".
func Document(title, diagram string) string {
	if title == "" {
		title = DefaultTitle
	}
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n```")
	b.WriteString(Language)
	b.WriteString("\n")
	b.WriteString(diagram)
	b.WriteString("\n```\n")
	return b.String()
}

// WriteFile writes [Document] to path, creating parent directories.
func WriteFile(path, title, diagram string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, []byte(Document(title, diagram)), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// Block is a mermaid fence found in a markdown source.
type Block struct {
	// Title is the text of the nearest heading above the fence.
	Title string
	// Diagram is the fence content without the final newline.
	Diagram string
	// Line is the 1-based line of the first content line.
	Line int
}

// Blocks returns the mermaid fences of src in document order.
func Blocks(src []byte) []Block {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var (
		blocks []Block
		title  string
	)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			title = inlineText(v, src)
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			if string(v.Language(src)) != Language {
				return ast.WalkSkipChildren, nil
			}
			blocks = append(blocks, fenceBlock(v, src, title))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return blocks
}

// ReadFile reads path and returns its mermaid fences.
func ReadFile(path string) ([]Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return Blocks(data), nil
}

func fenceBlock(fc *ast.FencedCodeBlock, src []byte, title string) Block {
	var buf bytes.Buffer
	lines := fc.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}

	b := Block{
		Title:   title,
		Diagram: strings.TrimSuffix(buf.String(), "\n"),
	}
	if lines.Len() > 0 {
		b.Line = bytes.Count(src[:lines.At(0).Start], []byte("\n")) + 1
	}
	return b
}

func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				buf.Write(t.Segment.Value(src))
				if t.SoftLineBreak() {
					buf.WriteByte(' ')
				}
			case *ast.String:
				buf.Write(t.Value)
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}
