package qualform

import (
	"path"
	"strings"

	"github.com/goliatone/go-qualform/pkg/xmltree"
)

// Fragment is one presentational unit inside a Content block. The set of
// fragment shapes is closed; consumers such as pkg/preview type-switch over
// it.
type Fragment interface {
	fragmentNode() *xmltree.Node
}

// Title renders as a heading above the surrounding content.
type Title struct {
	Text string
}

// Paragraph renders as a block of plain text. Markup characters appear
// verbatim in the web output.
type Paragraph struct {
	Text string
}

// FormattedText carries XHTML markup emitted as a literal CDATA section.
type FormattedText struct {
	Markup string
}

// BulletList renders its items as a bulleted list, one ListItem per entry.
type BulletList struct {
	Items []string
}

// Image references an externally hosted image with alternate text for
// clients that cannot render it.
type Image struct {
	URL     string
	AltText string
}

func (t Title) fragmentNode() *xmltree.Node {
	return xmltree.Element("Title", t.Text)
}

func (p Paragraph) fragmentNode() *xmltree.Node {
	return xmltree.Element("Text", p.Text)
}

func (f FormattedText) fragmentNode() *xmltree.Node {
	return xmltree.New("FormattedContent").SetCDATA(f.Markup)
}

func (l BulletList) fragmentNode() *xmltree.Node {
	list := xmltree.New("List")
	for _, item := range l.Items {
		list.AppendChild(xmltree.Element("ListItem", item))
	}
	return list
}

func (i Image) fragmentNode() *xmltree.Node {
	binary := xmltree.New("Binary")
	mime := xmltree.New("MimeType").AppendChild(xmltree.Element("Type", "image"))
	if sub := imageSubtype(i.URL); sub != "" {
		mime.AppendChild(xmltree.Element("SubType", sub))
	}
	return binary.AppendChild(
		mime,
		xmltree.Element("DataURL", i.URL),
		xmltree.Element("AltText", i.AltText),
	)
}

// imageSubtype derives the MIME subtype from the URL's file extension.
// URLs without an extension produce no SubType node.
func imageSubtype(url string) string {
	return strings.TrimPrefix(path.Ext(url), ".")
}

// Content accumulates presentation fragments for an Overview or a
// QuestionContent section. Builder methods append one fragment and return
// the receiver for chaining. A block renders under whichever root tag the
// surrounding document requires.
type Content struct {
	fragments []Fragment
}

// NewContent returns an empty content block.
func NewContent() *Content {
	return &Content{}
}

// AddTitle appends a heading.
func (c *Content) AddTitle(title string) *Content {
	return c.add(Title{Text: title})
}

// AddText appends a paragraph of plain text.
func (c *Content) AddText(text string) *Content {
	return c.add(Paragraph{Text: text})
}

// AddFormattedText embeds XHTML markup verbatim in a CDATA section. The
// target schema expects literal markup here, not escaped text, and callers
// are responsible for keeping it inside the permitted element set. Use
// AddSafeFormattedText to enforce that set.
func (c *Content) AddFormattedText(markup string) *Content {
	return c.add(FormattedText{Markup: markup})
}

// AddList appends a bulleted list of items.
func (c *Content) AddList(items ...string) *Content {
	return c.add(BulletList{Items: append([]string(nil), items...)})
}

// AddImage appends an image reference. The MIME subtype is derived from the
// URL's file extension when one is present.
func (c *Content) AddImage(url, altText string) *Content {
	return c.add(Image{URL: url, AltText: altText})
}

func (c *Content) add(frag Fragment) *Content {
	c.fragments = append(c.fragments, frag)
	return c
}

// Len reports the number of fragments added so far.
func (c *Content) Len() int {
	return len(c.fragments)
}

// Fragments returns the accumulated fragments in append order.
func (c *Content) Fragments() []Fragment {
	return append([]Fragment(nil), c.fragments...)
}

// Node compiles the block under rootName, defaulting to Content.
func (c *Content) Node(rootName string) *xmltree.Node {
	if rootName == "" {
		rootName = "Content"
	}
	node := xmltree.New(rootName)
	for _, frag := range c.fragments {
		node.AppendChild(frag.fragmentNode())
	}
	return node
}

// Render renders the block as XML text.
func (c *Content) Render(opts ...RenderOption) string {
	return Render(c, opts...)
}

// Save renders the block and writes it to path.
func (c *Content) Save(path string, opts ...RenderOption) error {
	return Save(c, path, opts...)
}
