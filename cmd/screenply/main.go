package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/screenply/screenply/internal/config"
	"github.com/screenply/screenply/internal/document"
	"github.com/screenply/screenply/internal/fountain"
	"github.com/screenply/screenply/internal/log"
	"github.com/screenply/screenply/pkg/api"
)

func main() {
	var (
		inputFile  string
		outDir     string
		format     string
		configFile string
		fontDir    string
		verbose    bool
	)

	flag.StringVar(&inputFile, "input", "", "Input screenplay file (.json or .fountain/.txt)")
	flag.StringVar(&outDir, "out", ".", "Output directory")
	flag.StringVar(&format, "format", "pdf", "Export format: pdf, html or both")
	flag.StringVar(&configFile, "config", "", "Optional YAML format profile")
	flag.StringVar(&fontDir, "fonts", "", "Directory searched for a Thai-capable TTF")
	flag.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flag.Parse()

	if inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: input file is required")
		flag.Usage()
		os.Exit(1)
	}

	profile := config.Defaults()
	if configFile != "" {
		var err error
		profile, err = config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	logOpts := log.Options{
		Level:  profile.Logging.Level,
		Format: profile.Logging.Format,
		File:   profile.Logging.File,
	}
	if verbose {
		logOpts.Level = "debug"
	}
	log.Init(logOpts)
	logger := log.L()

	doc, err := loadDocument(inputFile)
	if err != nil {
		logger.Error("failed to load screenplay", "input", inputFile, "error", err)
		os.Exit(1)
	}

	options := api.DefaultOptions()
	options.PageWidth = profile.Page.WidthPt
	options.PageHeight = profile.Page.HeightPt
	options.MarginTop = profile.Page.MarginTopPt
	options.MarginRight = profile.Page.MarginRightPt
	options.MarginBottom = profile.Page.MarginBottomPt
	options.MarginLeft = profile.Page.MarginLeftPt
	options.FontSize = profile.Font.SizePt
	options.Leading = profile.Font.Leading
	options.FontDirectories = append(options.FontDirectories, profile.Font.Directories...)
	if fontDir != "" {
		options.FontDirectories = append(options.FontDirectories, fontDir)
	}
	exporter := api.NewWithOptions(options)

	var formats []api.Format
	switch strings.ToLower(format) {
	case "pdf":
		formats = []api.Format{api.FormatPDF}
	case "html":
		formats = []api.Format{api.FormatHTML}
	case "both":
		formats = []api.Format{api.FormatPDF, api.FormatHTML}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", format)
		os.Exit(1)
	}

	for _, f := range formats {
		path, err := exporter.Export(doc, outDir, f)
		if err != nil {
			logger.Error("export failed", "format", string(f), "error", err)
			os.Exit(1)
		}
		logger.Info("exported screenplay", "format", string(f), "output", path)
	}
}

// loadDocument picks the decoder by file extension: the editor's JSON export
// or a Fountain-style plain-text script.
func loadDocument(path string) (*document.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return document.Parse(data)
	case ".fountain", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		return fountain.Parse(f)
	default:
		return nil, fmt.Errorf("unsupported input extension %q", filepath.Ext(path))
	}
}
