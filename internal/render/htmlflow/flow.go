// Package htmlflow renders a paginated layout as semantic HTML for a print
// pipeline: one section per page with page-break markers, one paragraph per
// block carrying its pre-wrapped lines. Counters and merges come from the
// shared pagination layout; a consuming print engine may recompute its own
// soft line breaks, but never the numbering.
package htmlflow

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/screenply/screenply/internal/document"
	"github.com/screenply/screenply/internal/layout"
	"github.com/screenply/screenply/internal/pagination"
)

// Renderer handles rendering a layout to print-ready HTML.
type Renderer struct{}

// RenderOptions contains document metadata for the markup.
type RenderOptions struct {
	Title string
	Lang  string // html lang attribute, defaults to "en"
}

// NewRenderer creates an HTML flow renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the layout as an HTML document to w.
func (r *Renderer) Render(lay *pagination.Layout, w io.Writer, options RenderOptions) error {
	lang := options.Lang
	if lang == "" {
		lang = "en"
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := elem("html", attr("lang", lang))
	doc.AppendChild(root)

	head := elem("head")
	root.AppendChild(head)
	meta := elem("meta", attr("charset", "utf-8"))
	head.AppendChild(meta)
	title := elem("title")
	title.AppendChild(textNode(options.Title))
	head.AppendChild(title)
	style := elem("style")
	style.AppendChild(textNode(stylesheet(lay.Geometry)))
	head.AppendChild(style)

	body := elem("body")
	root.AppendChild(body)
	for _, page := range lay.Pages {
		body.AppendChild(renderPage(page))
	}

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}

// renderPage emits one page section, grouping consecutive records of the
// same block back into a paragraph.
func renderPage(page *pagination.Page) *html.Node {
	section := elem("section",
		attr("class", "page"),
		attr("data-page", fmt.Sprintf("%d", page.Index)))

	for i := 0; i < len(page.Lines); {
		ln := page.Lines[i]
		j := i + 1
		for j < len(page.Lines) && ln.BlockID != "" && page.Lines[j].BlockID == ln.BlockID {
			j++
		}
		section.AppendChild(renderBlock(page.Lines[i:j]))
		i = j
	}
	return section
}

// renderBlock emits one paragraph for a run of lines belonging to the same
// block, with <br> separators and the running-number span anchored where
// pagination put it.
func renderBlock(lines []*pagination.Line) *html.Node {
	p := elem("p", attr("class", blockClass(lines[0])))
	for i, ln := range lines {
		if i > 0 {
			p.AppendChild(elem("br"))
		}
		if ln.Number != nil && numberSide(ln.BlockType) == layout.NumberLeft {
			p.AppendChild(numberSpan(ln.Number))
		}
		span := elem("span", attr("class", "line"))
		span.AppendChild(textNode(ln.Text))
		p.AppendChild(span)
		if ln.Number != nil && numberSide(ln.BlockType) == layout.NumberRight {
			p.AppendChild(numberSpan(ln.Number))
		}
	}
	return p
}

func numberSpan(n *pagination.NumberLabel) *html.Node {
	span := elem("span", attr("class", "running-number"))
	span.AppendChild(textNode(n.Text))
	return span
}

func blockClass(ln *pagination.Line) string {
	if ln.BlockID == "" {
		return "front-matter"
	}
	return string(ln.BlockType)
}

func numberSide(t document.BlockType) layout.NumberSide {
	return layout.Resolve(t).NumberSide
}

// stylesheet derives the print CSS from the page geometry and the
// descriptor table, so the markup carries the same format the direct-draw
// backend uses.
func stylesheet(g pagination.Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@page { size: %.2fpt %.2fpt; margin: 0; }\n", g.PageWidth, g.PageHeight)
	b.WriteString("body { font-family: 'Courier New', 'Sarabun', monospace; margin: 0; }\n")
	fmt.Fprintf(&b, "body { font-size: %.0fpt; line-height: %.2f; }\n", g.FontSize, g.Leading)
	fmt.Fprintf(&b, ".page { width: %.2fpt; min-height: %.2fpt; box-sizing: border-box; ", g.PageWidth, g.PageHeight)
	fmt.Fprintf(&b, "padding: %.0fpt %.0fpt %.0fpt %.0fpt; page-break-after: always; }\n",
		g.MarginTop, g.MarginRight, g.MarginBottom, g.MarginLeft)
	b.WriteString(".front-matter { text-align: center; }\n")
	b.WriteString(".running-number { position: absolute; }\n")

	types := []document.BlockType{
		document.SceneHeading, document.Action, document.Character,
		document.Dialogue, document.Parenthetical, document.Transition,
		document.Shot, document.Text,
	}
	for _, t := range types {
		d := layout.Resolve(t)
		fmt.Fprintf(&b, "p.%s { margin: %.1fpt 0 %.1fpt %.0fpt; max-width: %.2fpt;",
			string(t), d.SpaceBefore, d.SpaceAfter, d.LeftIndent,
			g.ContentWidth()*d.WidthFraction-d.LeftIndent)
		if d.Align == layout.AlignRight {
			b.WriteString(" text-align: right; margin-right: 0;")
		}
		if d.Bold {
			b.WriteString(" font-weight: bold;")
		}
		if d.Italic {
			b.WriteString(" font-style: italic;")
		}
		b.WriteString(" }\n")
	}
	return b.String()
}

func elem(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
