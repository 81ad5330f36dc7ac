package api

import "github.com/screenply/screenply/internal/pagination"

// Options represents configuration options for the exporter. All distances
// are in points.
type Options struct {
	// Page dimensions
	PageWidth  float64
	PageHeight float64

	// Page margins
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	// Text format
	FontSize float64
	Leading  float64

	// Directories searched for a Thai-capable TTF
	FontDirectories []string

	// Use the deterministic width estimate instead of Courier metrics
	EstimatedMetrics bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// DefaultOptions returns the industry screenplay format: A4, 85/68/68/68
// margins, 12pt at 1.2 leading.
func DefaultOptions() Options {
	o := pagination.DefaultOptions()
	return Options{
		PageWidth:    o.PageWidth,
		PageHeight:   o.PageHeight,
		MarginTop:    o.MarginTop,
		MarginRight:  o.MarginRight,
		MarginBottom: o.MarginBottom,
		MarginLeft:   o.MarginLeft,
		FontSize:     o.FontSize,
		Leading:      o.Leading,
	}
}

// pagination converts the exporter options to engine options.
func (o Options) pagination() pagination.Options {
	p := pagination.DefaultOptions()
	p.PageWidth = o.PageWidth
	p.PageHeight = o.PageHeight
	p.MarginTop = o.MarginTop
	p.MarginRight = o.MarginRight
	p.MarginBottom = o.MarginBottom
	p.MarginLeft = o.MarginLeft
	p.FontSize = o.FontSize
	p.Leading = o.Leading
	return p
}

// WithPageSize sets the page size.
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithMargins sets the page margins.
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTop = top
		o.MarginRight = right
		o.MarginBottom = bottom
		o.MarginLeft = left
	}
}

// WithFontSize sets the base font size.
func WithFontSize(size float64) Option {
	return func(o *Options) {
		o.FontSize = size
	}
}

// WithLeading sets the line height multiplier.
func WithLeading(leading float64) Option {
	return func(o *Options) {
		o.Leading = leading
	}
}

// WithFontDirectory adds a directory to search for fonts.
func WithFontDirectory(dir string) Option {
	return func(o *Options) {
		o.FontDirectories = append(o.FontDirectories, dir)
	}
}

// WithEstimatedMetrics switches width measurement to the deterministic
// estimate used when exact font metrics are unavailable.
func WithEstimatedMetrics() Option {
	return func(o *Options) {
		o.EstimatedMetrics = true
	}
}

// Standard page sizes in points (1/72 inch).
const (
	PageSizeA4Width  = 595.28
	PageSizeA4Height = 841.89

	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792
)

// WithPageSizeA4 sets the page size to ISO A4.
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter.
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}
