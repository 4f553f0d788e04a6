// Package markdown renders blog content written in Markdown to HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Blog post bodies may embed raw HTML (tables, iframes from the editor), so
// the renderer passes it through.
var blogMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// ToHTML renders source as GitHub-flavoured Markdown
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := blogMarkdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
