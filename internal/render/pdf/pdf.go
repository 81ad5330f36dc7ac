// Package pdf renders a paginated layout into a PDF by placing each
// positioned line at its absolute coordinates. The backend owns no layout
// decisions, only placement and font selection.
package pdf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"github.com/screenply/screenply/internal/log"
	"github.com/screenply/screenply/internal/pagination"
	"github.com/screenply/screenply/internal/res"
	"github.com/screenply/screenply/internal/text"
)

// thaiFamily is the family name Thai-capable TTFs are registered under.
const thaiFamily = "ThaiText"

// ascentRatio approximates the baseline offset from the top of a line.
const ascentRatio = 0.8

// Renderer handles rendering a layout to PDF.
type Renderer struct {
	fonts  *res.Loader
	logger *slog.Logger
}

// RenderOptions contains document metadata for the PDF.
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
}

// NewRenderer creates a PDF renderer. The loader is used to locate a
// Thai-capable TTF; pass nil to skip Thai font registration.
func NewRenderer(fonts *res.Loader) *Renderer {
	return &Renderer{fonts: fonts, logger: log.L()}
}

// Render writes the layout to outputPath. The file is produced via a
// temporary file in the target directory and renamed into place on success,
// so an aborted or failed export never leaves a partial artifact.
func (r *Renderer) Render(lay *pagination.Layout, outputPath string, options RenderOptions) error {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: lay.Geometry.PageWidth, Ht: lay.Geometry.PageHeight},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(options.Title, true)
	doc.SetAuthor(options.Author, true)
	doc.SetSubject(options.Subject, true)
	doc.SetKeywords(options.Keywords, true)
	doc.SetCreator(options.Creator, true)

	thai := r.registerThaiFont(doc)
	translate := doc.UnicodeTranslatorFromDescriptor("")
	fontSize := lay.Geometry.FontSize
	baseline := fontSize * ascentRatio

	for _, page := range lay.Pages {
		doc.AddPage()
		for _, ln := range page.Lines {
			r.drawLine(doc, ln, thai, translate, fontSize, baseline)
		}
	}

	if err := doc.Error(); err != nil {
		return fmt.Errorf("failed to build PDF: %w", err)
	}
	return writeAtomic(doc, outputPath)
}

// drawLine places one record and its running-number label, selecting the
// font per whether the text contains Thai codepoints.
func (r *Renderer) drawLine(doc *fpdf.Fpdf, ln *pagination.Line, thai bool, translate func(string) string, fontSize, baseline float64) {
	family, style, txt := "Courier", styleString(ln.Style), ln.Text
	if text.ContainsThai(txt) {
		if thai {
			// single regular face registered for the Thai family
			family, style = thaiFamily, ""
		} else {
			r.logger.Warn("no Thai font available; Thai glyphs will degrade",
				"block", ln.BlockID)
			txt = translate(txt)
		}
	} else {
		txt = translate(txt)
	}
	doc.SetFont(family, style, fontSize)
	doc.Text(ln.X, ln.Y+baseline, txt)

	if ln.Number != nil {
		doc.SetFont("Courier", "", fontSize)
		doc.Text(ln.Number.X, ln.Number.Y+baseline, translate(ln.Number.Text))
	}
}

// registerThaiFont registers the first Thai-capable TTF found in the font
// search paths and reports whether one is available.
func (r *Renderer) registerThaiFont(doc *fpdf.Fpdf) bool {
	if r.fonts == nil {
		return false
	}
	path, ok := r.fonts.FindThaiFont()
	if !ok {
		return false
	}
	doc.AddUTF8Font(thaiFamily, "", path)
	if err := doc.Error(); err != nil {
		r.logger.Warn("failed to register Thai font", "path", path, "error", err)
		return false
	}
	return true
}

func styleString(s pagination.StyleHints) string {
	var style string
	if s.Bold {
		style += "B"
	}
	if s.Italic {
		style += "I"
	}
	return style
}

// writeAtomic closes the document into a temp file next to outputPath and
// renames it into place.
func writeAtomic(doc *fpdf.Fpdf, outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".screenply-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	if err := doc.Output(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write PDF: %w", err)
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
		return fmt.Errorf("failed to finalize PDF: %w", err)
	}
	return nil
}
