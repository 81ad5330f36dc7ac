// Package pagination walks a merged block sequence and lays it out into
// fixed-size pages, producing positioned line records ready for a rendering
// backend. All pagination state is local to one Paginate call, so one engine
// can serve concurrent exports.
package pagination

import (
	"log/slog"

	"github.com/screenply/screenply/internal/document"
	"github.com/screenply/screenply/internal/log"
	"github.com/screenply/screenply/internal/text"
)

// Options represents options for the pagination engine. All distances are in
// points.
type Options struct {
	PageWidth    float64
	PageHeight   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
	FontFamily   string
	FontSize     float64
	Leading      float64 // line height multiplier
}

// DefaultOptions returns the industry screenplay format: A4 in points,
// 85/68/68/68 margins, 12pt Courier at 1.2 leading.
func DefaultOptions() Options {
	return Options{
		PageWidth:    595.28,
		PageHeight:   841.89,
		MarginTop:    68,
		MarginRight:  68,
		MarginBottom: 68,
		MarginLeft:   85,
		FontFamily:   "Courier",
		FontSize:     12,
		Leading:      1.2,
	}
}

// ContentWidth is the width of the content rectangle.
func (o Options) ContentWidth() float64 {
	return o.PageWidth - o.MarginLeft - o.MarginRight
}

// LineHeight is the vertical advance of one text line.
func (o Options) LineHeight() float64 {
	return o.FontSize * o.Leading
}

// Engine drives pagination. It holds configuration only; counters, cursor
// and pages live inside each Paginate call.
type Engine struct {
	options  Options
	measurer text.Measurer
	logger   *slog.Logger
}

// NewEngine creates a pagination engine with the default format and the
// Courier metrics measurer.
func NewEngine() *Engine {
	return &Engine{
		options:  DefaultOptions(),
		measurer: text.CourierMetrics{},
		logger:   log.L(),
	}
}

// SetOptions sets the options for the pagination engine.
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// SetMeasurer replaces the width measurer. Tests use text.Estimate for
// reproducibility without font metrics.
func (e *Engine) SetMeasurer(m text.Measurer) {
	if m != nil {
		e.measurer = m
	}
}

// SetLogger replaces the logger used for recoverable layout warnings.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l != nil {
		e.logger = l
	}
}

// Paginate merges parentheticals into their dialogue, lays the blocks out
// behind a title page built from header, and returns the resulting layout.
// It never fails: malformed blocks degrade per the descriptor fallback and
// measurement rules.
func (e *Engine) Paginate(blocks []document.Block, header document.Header) *Layout {
	p := newPaginator(e.options, e.measurer, e.logger)
	return p.run(blocks, header.WithDefaults())
}
