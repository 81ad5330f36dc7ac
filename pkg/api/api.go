// Package api is the public surface of screenply: it wires the block model
// through the pagination engine into one of the rendering backends.
package api

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/screenply/screenply/internal/document"
	"github.com/screenply/screenply/internal/pagination"
	"github.com/screenply/screenply/internal/render/htmlflow"
	"github.com/screenply/screenply/internal/render/pdf"
	"github.com/screenply/screenply/internal/res"
	"github.com/screenply/screenply/internal/text"
)

// Format selects a rendering backend.
type Format string

const (
	// FormatPDF is the direct-draw backend: text placed at absolute
	// coordinates in a PDF.
	FormatPDF Format = "pdf"
	// FormatHTML is the flow backend: semantic markup for a print pipeline.
	FormatHTML Format = "html"
)

// variantTag is the filename tag distinguishing the export variants.
func (f Format) variantTag() string {
	if f == FormatHTML {
		return "print"
	}
	return "screenplay"
}

func (f Format) ext() string {
	if f == FormatHTML {
		return "html"
	}
	return "pdf"
}

// Exporter is the main API for exporting screenplay documents.
type Exporter struct {
	options Options
	fonts   *res.Loader
}

// New creates an exporter with the default industry format.
func New() *Exporter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates an exporter with the specified options.
func NewWithOptions(options Options) *Exporter {
	fonts := res.NewLoader(options.FontDirectories...)
	return &Exporter{options: options, fonts: fonts}
}

// WithOption returns a new exporter with the specified option applied.
func (e *Exporter) WithOption(option Option) *Exporter {
	newOptions := e.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// Layout paginates the document without rendering it. Both backends consume
// the same layout, so counters and merges never diverge between variants.
func (e *Exporter) Layout(doc *document.Document) *pagination.Layout {
	engine := pagination.NewEngine()
	engine.SetOptions(e.options.pagination())
	if e.options.EstimatedMetrics {
		engine.SetMeasurer(text.Estimate{})
	}
	return engine.Paginate(doc.Blocks, doc.Header)
}

// Export paginates the document once and writes it under outDir as
// <sanitized title>_<variant>.<ext>, returning the full output path.
func (e *Exporter) Export(doc *document.Document, outDir string, format Format) (string, error) {
	path := filepath.Join(outDir, OutputName(doc.Header.WithDefaults().Title, format))
	switch format {
	case FormatHTML:
		if err := e.ExportHTMLFile(doc, path); err != nil {
			return "", err
		}
	case FormatPDF:
		if err := e.ExportPDF(doc, path); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
	return path, nil
}

// ExportPDF writes the document as a PDF to outputPath.
func (e *Exporter) ExportPDF(doc *document.Document, outputPath string) error {
	lay := e.Layout(doc)
	header := doc.Header.WithDefaults()
	renderer := pdf.NewRenderer(e.fonts)
	err := renderer.Render(lay, outputPath, pdf.RenderOptions{
		Title:   header.Title,
		Author:  header.Author,
		Creator: "screenply",
	})
	if err != nil {
		return fmt.Errorf("failed to export PDF: %w", err)
	}
	return nil
}

// ExportHTML writes the document as print-ready HTML to w.
func (e *Exporter) ExportHTML(doc *document.Document, w io.Writer) error {
	lay := e.Layout(doc)
	header := doc.Header.WithDefaults()
	renderer := htmlflow.NewRenderer()
	lang := "en"
	if text.ContainsThai(header.Title) || containsThaiBlocks(doc.Blocks) {
		lang = "th"
	}
	err := renderer.Render(lay, w, htmlflow.RenderOptions{Title: header.Title, Lang: lang})
	if err != nil {
		return fmt.Errorf("failed to export HTML: %w", err)
	}
	return nil
}

// ExportHTMLFile writes the HTML export to outputPath via a temporary file
// renamed into place, so a failed export leaves no partial artifact.
func (e *Exporter) ExportHTMLFile(doc *document.Document, outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".screenply-*.html")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	if err := e.ExportHTML(doc, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Rename(tmpName, outputPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to finalize HTML: %w", err)
	}
	return nil
}

// OutputName derives the artifact filename from a title and format.
func OutputName(title string, format Format) string {
	return fmt.Sprintf("%s_%s.%s", document.SanitizeTitle(title), format.variantTag(), format.ext())
}

func containsThaiBlocks(blocks []document.Block) bool {
	for _, b := range blocks {
		if text.ContainsThai(b.Content) {
			return true
		}
	}
	return false
}
