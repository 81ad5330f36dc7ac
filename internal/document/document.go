// Package document defines the screenplay block model consumed by the
// layout pipeline and the loader for the editor's JSON export format.
package document

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// BlockType is the closed enumeration of screenplay block kinds. The type
// dictates all layout; content never embeds it.
type BlockType string

const (
	SceneHeading  BlockType = "scene-heading"
	Action        BlockType = "action"
	Character     BlockType = "character"
	Dialogue      BlockType = "dialogue"
	Parenthetical BlockType = "parenthetical"
	Transition    BlockType = "transition"
	Shot          BlockType = "shot"
	Text          BlockType = "text"
)

// Block is one screenplay unit. Blocks are immutable once handed to the
// pipeline; transforms derive new blocks instead of mutating inputs.
type Block struct {
	ID      string    `json:"id"`
	Type    BlockType `json:"type"`
	Content string    `json:"content"`
}

// Header carries the title-page fields. All fields are optional.
type Header struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Contact string `json:"contact"`
}

// DefaultTitle is used when a document carries no title.
const DefaultTitle = "Untitled Screenplay"

// WithDefaults fills empty header fields with their placeholders.
func (h Header) WithDefaults() Header {
	if strings.TrimSpace(h.Title) == "" {
		h.Title = DefaultTitle
	}
	return h
}

// Document is a complete screenplay: header plus the ordered block sequence.
type Document struct {
	Header Header  `json:"header"`
	Blocks []Block `json:"blocks"`
}

// Parse validates data against the document schema and decodes it. Unknown
// block types pass validation on purpose: layout treats them as action
// blocks rather than rejecting the document.
func Parse(data []byte) (*Document, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

// SanitizeTitle derives a filename stem from a title: alphanumerics and Thai
// codepoints are kept, whitespace runs collapse to a single underscore,
// everything else is dropped, and the result is lower-cased.
func SanitizeTitle(title string) string {
	var b strings.Builder
	sep := false
	for _, r := range strings.TrimSpace(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(unicode.ToLower(r))
			sep = false
		case r >= 0x0E00 && r <= 0x0E7F:
			b.WriteRune(r)
			sep = false
		case unicode.IsSpace(r):
			if !sep && b.Len() > 0 {
				b.WriteByte('_')
				sep = true
			}
		}
	}
	s := strings.TrimSuffix(b.String(), "_")
	if s == "" {
		return "untitled"
	}
	return s
}
