package xmltree

import (
	"fmt"
	"os"
	"strings"
)

// Options control how a tree renders to text. The zero value produces compact
// single-line output; DefaultOptions returns the pretty defaults shared by
// the document builders.
type Options struct {
	// Pretty indents every element on its own line. Elements holding only
	// text stay on one line.
	Pretty bool
	// Indent is the number of spaces per nesting level when Pretty is set.
	Indent int
	// URLSafe percent-encodes the nine URL-reserved characters over the
	// whole rendered text as a final pass, so the document can travel as a
	// single request parameter.
	URLSafe bool
}

// DefaultOptions returns pretty output with a four-space indent.
func DefaultOptions() Options {
	return Options{Pretty: true, Indent: 4}
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

	// The nine characters the qualification service requires percent-encoded
	// when a document rides inside a request parameter. Nothing else is
	// touched, including % itself.
	urlEscaper = strings.NewReplacer(
		"$", "%24",
		"&", "%26",
		"+", "%2B",
		",", "%2C",
		"/", "%2F",
		":", "%3A",
		";", "%3B",
		"?", "%3F",
		"@", "%40",
	)
)

// Encode renders the tree rooted at n. The output never carries an XML
// declaration.
func Encode(n *Node, opts Options) string {
	if n == nil {
		return ""
	}
	if opts.Pretty && opts.Indent <= 0 {
		opts.Indent = DefaultOptions().Indent
	}
	var out strings.Builder
	writeNode(&out, n, opts, 0)
	rendered := out.String()
	if opts.URLSafe {
		rendered = urlEscaper.Replace(rendered)
	}
	return rendered
}

// Write renders the tree and writes it to path in a single write. The write
// is not atomic; callers needing atomicity should write to a temporary path
// and rename.
func Write(path string, n *Node, opts Options) error {
	if err := os.WriteFile(path, []byte(Encode(n, opts)), 0o644); err != nil {
		return fmt.Errorf("xmltree: write %s: %w", path, err)
	}
	return nil
}

func writeNode(out *strings.Builder, n *Node, opts Options, depth int) {
	pad := ""
	if opts.Pretty {
		pad = strings.Repeat(" ", opts.Indent*depth)
	}
	out.WriteString(pad)
	out.WriteByte('<')
	out.WriteString(n.Tag)
	for _, attr := range n.Attrs {
		out.WriteByte(' ')
		out.WriteString(attr.Name)
		out.WriteString(`="`)
		out.WriteString(attrEscaper.Replace(attr.Value))
		out.WriteByte('"')
	}

	if n.Text == "" && len(n.Children) == 0 {
		out.WriteString("/>")
		if opts.Pretty {
			out.WriteByte('\n')
		}
		return
	}

	out.WriteByte('>')
	if n.Text != "" {
		if n.CDATA {
			writeCDATA(out, n.Text)
		} else {
			out.WriteString(textEscaper.Replace(n.Text))
		}
	}
	if len(n.Children) > 0 {
		if opts.Pretty {
			out.WriteByte('\n')
		}
		for _, child := range n.Children {
			writeNode(out, child, opts, depth+1)
		}
		out.WriteString(pad)
	}
	out.WriteString("</")
	out.WriteString(n.Tag)
	out.WriteByte('>')
	if opts.Pretty {
		out.WriteByte('\n')
	}
}

// writeCDATA emits text as a CDATA section. A literal "]]>" inside the text
// would terminate the section early, so it is split across two sections.
func writeCDATA(out *strings.Builder, text string) {
	out.WriteString("<![CDATA[")
	out.WriteString(strings.ReplaceAll(text, "]]>", "]]]]><![CDATA[>"))
	out.WriteString("]]>")
}
