// Package screenply lays out typed screenplay blocks into fixed-size pages
// with industry-standard Thai/English formatting and exports them as PDF or
// print-ready HTML.
package screenply

import (
	"github.com/screenply/screenply/internal/document"
	"github.com/screenply/screenply/pkg/api"
)

type Exporter = api.Exporter
type Options = api.Options
type Option = api.Option
type Format = api.Format

// Block model, re-exported so callers can build documents directly.
type Document = document.Document
type Block = document.Block
type BlockType = document.BlockType
type Header = document.Header

const (
	FormatPDF  = api.FormatPDF
	FormatHTML = api.FormatHTML

	SceneHeading  = document.SceneHeading
	Action        = document.Action
	Character     = document.Character
	Dialogue      = document.Dialogue
	Parenthetical = document.Parenthetical
	Transition    = document.Transition
	Shot          = document.Shot
	Text          = document.Text
)

func New() *Exporter                           { return api.New() }
func NewWithOptions(options Options) *Exporter { return api.NewWithOptions(options) }
func DefaultOptions() Options                  { return api.DefaultOptions() }

// ParseDocument validates and decodes the editor's JSON export format.
func ParseDocument(data []byte) (*Document, error) { return document.Parse(data) }

// OutputName derives the artifact filename from a title and format.
func OutputName(title string, format Format) string { return api.OutputName(title, format) }

var (
	WithPageSize         = api.WithPageSize
	WithMargins          = api.WithMargins
	WithFontSize         = api.WithFontSize
	WithLeading          = api.WithLeading
	WithFontDirectory    = api.WithFontDirectory
	WithEstimatedMetrics = api.WithEstimatedMetrics
	WithPageSizeA4       = api.WithPageSizeA4
	WithPageSizeLetter   = api.WithPageSizeLetter
)

const (
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height

	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
)
