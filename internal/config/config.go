// Package config loads the CLI's format profile: a YAML file overriding the
// default page geometry, font settings and logging. The library API does not
// read config; it takes explicit options.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/screenply/screenply/internal/pagination"
)

// PageConfig is the page geometry in points.
type PageConfig struct {
	WidthPt        float64 `yaml:"width_pt"`
	HeightPt       float64 `yaml:"height_pt"`
	MarginTopPt    float64 `yaml:"margin_top_pt"`
	MarginRightPt  float64 `yaml:"margin_right_pt"`
	MarginBottomPt float64 `yaml:"margin_bottom_pt"`
	MarginLeftPt   float64 `yaml:"margin_left_pt"`
}

// FontConfig is the text format settings.
type FontConfig struct {
	SizePt      float64  `yaml:"size_pt"`
	Leading     float64  `yaml:"leading"`
	Directories []string `yaml:"directories"`
}

// LoggingConfig mirrors internal/log.Options.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Profile is the user-editable format profile.
type Profile struct {
	Page    PageConfig    `yaml:"page"`
	Font    FontConfig    `yaml:"font"`
	Logging LoggingConfig `yaml:"logging"`
}

// Defaults returns the industry screenplay format profile.
func Defaults() Profile {
	o := pagination.DefaultOptions()
	return Profile{
		Page: PageConfig{
			WidthPt:        o.PageWidth,
			HeightPt:       o.PageHeight,
			MarginTopPt:    o.MarginTop,
			MarginRightPt:  o.MarginRight,
			MarginBottomPt: o.MarginBottom,
			MarginLeftPt:   o.MarginLeft,
		},
		Font: FontConfig{
			SizePt:  o.FontSize,
			Leading: o.Leading,
		},
	}
}

// Load reads a profile from path, overlaying the defaults. Fields absent
// from the file keep their default values.
func Load(path string) (Profile, error) {
	p := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := p.validate(); err != nil {
		return Defaults(), err
	}
	return p, nil
}

func (p Profile) validate() error {
	if p.Page.WidthPt <= 0 || p.Page.HeightPt <= 0 {
		return fmt.Errorf("invalid config: page size must be positive")
	}
	if p.Font.SizePt <= 0 || p.Font.Leading <= 0 {
		return fmt.Errorf("invalid config: font size and leading must be positive")
	}
	contentW := p.Page.WidthPt - p.Page.MarginLeftPt - p.Page.MarginRightPt
	contentH := p.Page.HeightPt - p.Page.MarginTopPt - p.Page.MarginBottomPt
	if contentW <= 0 || contentH <= 0 {
		return fmt.Errorf("invalid config: margins leave no content rectangle")
	}
	return nil
}

// PaginationOptions converts the profile into engine options.
func (p Profile) PaginationOptions() pagination.Options {
	o := pagination.DefaultOptions()
	o.PageWidth = p.Page.WidthPt
	o.PageHeight = p.Page.HeightPt
	o.MarginTop = p.Page.MarginTopPt
	o.MarginRight = p.Page.MarginRightPt
	o.MarginBottom = p.Page.MarginBottomPt
	o.MarginLeft = p.Page.MarginLeftPt
	o.FontSize = p.Font.SizePt
	o.Leading = p.Font.Leading
	return o
}
