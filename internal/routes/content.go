package routes

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(goldmark.WithParserOptions(parser.WithAutoHeadingID()))

// stripFrontmatter drops a leading ----delimited YAML block so its lines
// are not parsed as markdown headings.
func stripFrontmatter(content []byte) []byte {
	nl := []byte("\n")
	if bytes.HasPrefix(content, []byte("---\r\n")) {
		nl = []byte("\r\n")
	}
	open := append([]byte("---"), nl...)
	if !bytes.HasPrefix(content, open) {
		return content
	}
	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return rest[len(open):]
	}
	closing := append(append(append([]byte{}, nl...), "---"...), nl...)
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		return content
	}
	return rest[idx+len(closing):]
}

// headingIDs returns the auto-generated IDs of every heading in a markdown
// document.
func headingIDs(content []byte) map[string]bool {
	body := stripFrontmatter(content)
	root := md.Parser().Parse(text.NewReader(body))

	ids := make(map[string]bool)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if _, ok := n.(*gmast.Heading); !ok {
			return gmast.WalkContinue, nil
		}
		if v, ok := n.AttributeString("id"); ok {
			if id, ok := v.([]byte); ok && len(id) > 0 {
				ids[string(id)] = true
			}
		}
		return gmast.WalkSkipChildren, nil
	})
	return ids
}
