package pagination

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/screenply/screenply/internal/document"
	"github.com/screenply/screenply/internal/layout"
	"github.com/screenply/screenply/internal/text"
)

// StyleHints carries the per-line rendering attributes a backend needs
// beyond the text itself.
type StyleHints struct {
	Bold   bool
	Italic bool
	Align  layout.Alignment
}

// NumberLabel is a running-number annotation anchored to one line.
type NumberLabel struct {
	Text string
	X    float64
	Y    float64
}

// Line is one positioned, wrapped, case-transformed line of text. Y is the
// top of the line within its page; it always falls inside the content
// rectangle.
type Line struct {
	PageIndex int
	X         float64
	Y         float64
	Text      string
	BlockID   string
	BlockType document.BlockType
	Style     StyleHints
	Number    *NumberLabel
}

// Page holds the lines placed on one page. Index 0 is the title page.
type Page struct {
	Index  int
	Width  float64
	Height float64
	Lines  []*Line
}

// Counters are the three independent running numbers, final values after a
// full pagination pass.
type Counters struct {
	Scene      int
	Dialogue   int
	Transition int
}

// SceneRef is one entry of the scene index: where a numbered scene heading
// landed.
type SceneRef struct {
	Number    int
	PageIndex int
	Heading   string
}

// Layout is the result of one pagination pass, shared by every rendering
// backend so counters and merges never diverge between output variants.
type Layout struct {
	Pages    []*Page
	Geometry Options
	Counters Counters
	Scenes   []SceneRef
}

// Records flattens the layout into emission order: strictly increasing
// (page, Y).
func (l *Layout) Records() []*Line {
	var out []*Line
	for _, p := range l.Pages {
		out = append(out, p.Lines...)
	}
	return out
}

// Gutter distances for running-number labels, from the content edges.
const (
	sceneNumberGutter = 30
	rightNumberGutter = 10
)

// paginator is the per-call state machine: title page first, then the block
// loop with a running vertical cursor.
type paginator struct {
	opts     Options
	measurer text.Measurer
	logger   *slog.Logger

	pages    []*Page
	cursorY  float64
	counters Counters
	scenes   []SceneRef
}

func newPaginator(opts Options, m text.Measurer, l *slog.Logger) *paginator {
	return &paginator{opts: opts, measurer: m, logger: l}
}

func (p *paginator) run(blocks []document.Block, header document.Header) *Layout {
	p.titlePage(header)
	p.newPage()
	for _, b := range layout.MergeParentheticals(blocks) {
		p.placeBlock(b)
	}
	return &Layout{
		Pages:    p.pages,
		Geometry: p.opts,
		Counters: p.counters,
		Scenes:   p.scenes,
	}
}

func (p *paginator) newPage() {
	p.pages = append(p.pages, &Page{
		Index:  len(p.pages),
		Width:  p.opts.PageWidth,
		Height: p.opts.PageHeight,
	})
	p.cursorY = p.opts.MarginTop
}

func (p *paginator) page() *Page {
	return p.pages[len(p.pages)-1]
}

func (p *paginator) font(d layout.Descriptor) text.Font {
	return text.Font{
		Family: p.opts.FontFamily,
		Size:   p.opts.FontSize,
		Bold:   d.Bold,
		Italic: d.Italic,
	}
}

// titlePage emits the fixed title sub-layout on page 0. Title text is
// assumed short: no wrapping and no page-break logic applies here.
func (p *paginator) titlePage(header document.Header) {
	p.newPage()
	lh := p.opts.LineHeight()
	font := text.Font{Family: p.opts.FontFamily, Size: p.opts.FontSize}
	boldFont := font
	boldFont.Bold = true

	y := p.opts.PageHeight * 0.35
	title := text.Uppercase(text.Normalize(header.Title))
	p.emit(&Line{
		X:     p.centerX(title, boldFont),
		Y:     y,
		Text:  title,
		Style: StyleHints{Bold: true, Align: layout.AlignCenter},
	})

	if author := text.Normalize(header.Author); strings.TrimSpace(author) != "" {
		y += 3 * lh
		byline := "Written by"
		p.emit(&Line{
			X:     p.centerX(byline, font),
			Y:     y,
			Text:  byline,
			Style: StyleHints{Align: layout.AlignCenter},
		})
		y += 2 * lh
		p.emit(&Line{
			X:     p.centerX(author, font),
			Y:     y,
			Text:  author,
			Style: StyleHints{Align: layout.AlignCenter},
		})
	}

	if contact := text.Normalize(header.Contact); strings.TrimSpace(contact) != "" {
		p.emit(&Line{
			X:     p.opts.PageWidth - p.opts.MarginRight - p.measurer.Width(contact, font),
			Y:     p.opts.PageHeight - p.opts.MarginBottom - lh,
			Text:  contact,
			Style: StyleHints{Align: layout.AlignRight},
		})
	}
}

// placeBlock lays out one block: skip-if-empty, case transform, counter
// increment, wrap, then per-line page-break checks and record emission.
func (p *paginator) placeBlock(b document.Block) {
	content := text.Normalize(b.Content)
	if strings.TrimSpace(content) == "" {
		// Policy: an empty block emits nothing and does not advance its
		// counter, regardless of type.
		return
	}

	d := layout.Resolve(b.Type)
	if d.Uppercase {
		content = text.Uppercase(content)
	}

	var label string
	switch d.Counter {
	case layout.CounterScene:
		p.counters.Scene++
		label = strconv.Itoa(p.counters.Scene)
	case layout.CounterDialogue:
		p.counters.Dialogue++
		label = strconv.Itoa(p.counters.Dialogue)
	case layout.CounterTransition:
		p.counters.Transition++
		label = strconv.Itoa(p.counters.Transition)
	}

	font := p.font(d)
	maxWidth := p.opts.ContentWidth()*d.WidthFraction - d.LeftIndent
	if maxWidth < p.opts.FontSize {
		maxWidth = p.opts.FontSize
	}
	lines := text.Wrap(content, maxWidth, font, p.measurer)
	if len(lines) == 0 {
		return
	}

	lh := p.opts.LineHeight()
	if d.SpaceBefore > 0 && p.cursorY > p.opts.MarginTop {
		p.cursorY += d.SpaceBefore
	}

	emitted := make([]*Line, 0, len(lines))
	for _, ln := range lines {
		if p.cursorY+lh > p.opts.PageHeight-p.opts.MarginBottom {
			p.newPage()
		}
		rec := &Line{
			X:         p.lineX(ln, d, font, b.ID),
			Y:         p.cursorY,
			Text:      ln,
			BlockID:   b.ID,
			BlockType: b.Type,
			Style:     StyleHints{Bold: d.Bold, Italic: d.Italic, Align: d.Align},
		}
		p.emit(rec)
		emitted = append(emitted, rec)
		p.cursorY += lh
	}
	p.cursorY += d.SpaceAfter

	if label != "" {
		p.attachNumber(emitted, label, d.NumberSide)
	}
	if d.Counter == layout.CounterScene {
		p.scenes = append(p.scenes, SceneRef{
			Number:    p.counters.Scene,
			PageIndex: emitted[0].PageIndex,
			Heading:   content,
		})
	}
}

// emit appends a record to the current page, stamping its page index.
func (p *paginator) emit(rec *Line) {
	page := p.page()
	rec.PageIndex = page.Index
	page.Lines = append(page.Lines, rec)
}

// lineX computes a line's horizontal position from its alignment and clamps
// it into the content rectangle when an oversized line would escape it.
func (p *paginator) lineX(ln string, d layout.Descriptor, font text.Font, blockID string) float64 {
	var x float64
	switch d.Align {
	case layout.AlignRight:
		x = p.opts.PageWidth - p.opts.MarginRight - p.measurer.Width(ln, font)
	case layout.AlignCenter:
		x = (p.opts.PageWidth - p.measurer.Width(ln, font)) / 2
	default:
		x = p.opts.MarginLeft + d.LeftIndent
	}
	if x < p.opts.MarginLeft {
		p.logger.Warn("clamped line into content rectangle",
			"block", blockID, "x", x, "min", p.opts.MarginLeft)
		x = p.opts.MarginLeft
	}
	return x
}

func (p *paginator) centerX(s string, font text.Font) float64 {
	x := (p.opts.PageWidth - p.measurer.Width(s, font)) / 2
	if x < p.opts.MarginLeft {
		x = p.opts.MarginLeft
	}
	return x
}

// attachNumber anchors a running-number label to a block's lines: scene
// numbers sit in the left margin gutter next to the first line, dialogue and
// transition numbers sit at the right margin next to the last line.
func (p *paginator) attachNumber(emitted []*Line, label string, side layout.NumberSide) {
	font := text.Font{Family: p.opts.FontFamily, Size: p.opts.FontSize}
	if side == layout.NumberLeft {
		first := emitted[0]
		x := p.opts.MarginLeft - sceneNumberGutter - p.measurer.Width(label, font)
		if x < 0 {
			x = 0
		}
		first.Number = &NumberLabel{Text: label, X: x, Y: first.Y}
		return
	}
	last := emitted[len(emitted)-1]
	x := p.opts.PageWidth - p.opts.MarginRight + rightNumberGutter
	if max := p.opts.PageWidth - p.measurer.Width(label, font); x > max {
		x = max
	}
	last.Number = &NumberLabel{Text: label, X: x, Y: last.Y}
}
