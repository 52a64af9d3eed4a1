package qualform

import (
	"github.com/goliatone/go-qualform/pkg/xmltree"
)

// Document is implemented by every builder that can render itself as a
// standalone XML document.
type Document interface {
	// Node compiles the builder into a tree rooted at rootName. An empty
	// rootName selects the builder's default tag.
	Node(rootName string) *xmltree.Node
}

// RenderOption adjusts how a document renders to text.
type RenderOption func(*renderConfig)

type renderConfig struct {
	rootName string
	encode   xmltree.Options
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{encode: xmltree.DefaultOptions()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithRootName renders the document under a different root tag. Content
// blocks use this to appear as Overview or QuestionContent depending on
// context.
func WithRootName(name string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.rootName = name
	}
}

// Compact disables pretty printing, producing a single line.
func Compact() RenderOption {
	return func(cfg *renderConfig) {
		cfg.encode.Pretty = false
	}
}

// WithIndent overrides the pretty-print indent width. The default is four
// spaces.
func WithIndent(width int) RenderOption {
	return func(cfg *renderConfig) {
		if width > 0 {
			cfg.encode.Indent = width
		}
	}
}

// URLSafe percent-encodes the nine URL-reserved characters in the rendered
// text so the document can ride inside a request parameter.
func URLSafe() RenderOption {
	return func(cfg *renderConfig) {
		cfg.encode.URLSafe = true
	}
}

// Render renders any document builder with the supplied options.
func Render(doc Document, opts ...RenderOption) string {
	cfg := newRenderConfig(opts)
	return xmltree.Encode(doc.Node(cfg.rootName), cfg.encode)
}

// Save renders the document and writes it to path.
func Save(doc Document, path string, opts ...RenderOption) error {
	cfg := newRenderConfig(opts)
	return xmltree.Write(path, doc.Node(cfg.rootName), cfg.encode)
}
