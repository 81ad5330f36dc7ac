// Package fountain imports plain-text screenplays written with Fountain
// conventions into the typed block model: scene-heading prefixes,
// transitions ending in "TO:", parenthetical lines, upper-case character
// cues followed by dialogue. Thai character cues have no case, so the "@"
// force prefix marks them explicitly.
package fountain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/screenply/screenply/internal/document"
	"github.com/screenply/screenply/internal/text"
)

// SceneHeading is the parsed structure of one scene heading line, e.g.
// "EXT. PARK - DAY" -> Prefix "EXT", Location [PARK], Time [DAY].
type SceneHeading struct {
	Prefix   string   `parser:"@Prefix '.'"`
	Location []string `parser:"@Word+"`
	Time     []string `parser:"( '-' @Word+ )?"`
}

var (
	sceneLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Prefix", Pattern: `(?:INT/EXT|EXT/INT|I/E|INT|EXT)\b`},
		{Name: "Dot", Pattern: `\.`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Word", Pattern: `[^\s.\-][^\s\-]*`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
	})

	sceneParser = participle.MustBuild[SceneHeading](
		participle.Lexer(sceneLexer),
		participle.Elide("Whitespace"),
	)
)

// ParseSceneHeading parses a single line as a scene heading.
func ParseSceneHeading(line string) (*SceneHeading, bool) {
	sh, err := sceneParser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return nil, false
	}
	return sh, true
}

// IsSceneHeading reports whether line parses as a scene heading.
func IsSceneHeading(line string) bool {
	_, ok := ParseSceneHeading(line)
	return ok
}

// Parse reads a plain-text screenplay and converts it into a document.
func Parse(r io.Reader) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	doc := &document.Document{}
	i := parseTitlePage(lines, &doc.Header)

	blankBefore := true
	nextID := 0
	add := func(t document.BlockType, content string) {
		doc.Blocks = append(doc.Blocks, document.Block{
			ID:      fmt.Sprintf("b%d", nextID),
			Type:    t,
			Content: content,
		})
		nextID++
	}

	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			blankBefore = true
			continue
		}

		switch {
		case strings.HasPrefix(line, "!"):
			add(document.Action, strings.TrimSpace(line[1:]))
		case strings.HasPrefix(line, "@"):
			add(document.Character, strings.TrimSpace(line[1:]))
		case strings.HasPrefix(line, ".") && len(line) > 1 && !strings.HasPrefix(line, ".."):
			add(document.SceneHeading, strings.TrimSpace(line[1:]))
		case IsSceneHeading(line):
			add(document.SceneHeading, line)
		case strings.HasPrefix(line, ">") && strings.HasSuffix(line, "<"):
			add(document.Text, strings.TrimSpace(strings.TrimSuffix(line[1:], "<")))
		case strings.HasPrefix(line, ">"):
			add(document.Transition, strings.TrimSpace(line[1:]))
		case isTransition(line):
			add(document.Transition, line)
		case strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")") && inDialogue(doc.Blocks):
			add(document.Parenthetical, line)
		case blankBefore && isCharacterCue(line) && nextNonEmpty(lines, i+1):
			add(document.Character, line)
		case !blankBefore && inDialogue(doc.Blocks):
			add(document.Dialogue, line)
		default:
			add(document.Action, line)
		}
		blankBefore = false
	}
	return doc, nil
}

// parseTitlePage consumes leading "Key: Value" lines and returns the index
// of the first script line.
func parseTitlePage(lines []string, h *document.Header) int {
	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			if i == 0 {
				continue
			}
			break
		}
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			break
		}
		val = strings.TrimSpace(val)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "title":
			h.Title = val
		case "author", "authors", "written by", "credit":
			if h.Author == "" {
				h.Author = val
			}
		case "contact":
			h.Contact = val
		default:
			return i
		}
	}
	return i
}

// isTransition matches upper-case lines ending in "TO:" plus the closing
// transitions that carry no target.
func isTransition(line string) bool {
	if line != strings.ToUpper(line) {
		return false
	}
	if strings.HasSuffix(line, "TO:") {
		return true
	}
	switch line {
	case "FADE OUT.", "FADE TO BLACK.", "CUT TO BLACK.":
		return true
	}
	return false
}

// isCharacterCue matches a short all-caps line with at least one letter.
// Parenthetical extensions like "(V.O.)" are allowed. Thai lines never
// match, caselessness would make every Thai action line a cue; Thai cues
// use the "@" prefix instead.
func isCharacterCue(line string) bool {
	if len(line) > 60 || strings.HasSuffix(line, "TO:") || text.ContainsThai(line) {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// inDialogue reports whether the previous block keeps dialogue context open.
func inDialogue(blocks []document.Block) bool {
	if len(blocks) == 0 {
		return false
	}
	switch blocks[len(blocks)-1].Type {
	case document.Character, document.Parenthetical, document.Dialogue:
		return true
	}
	return false
}

// nextNonEmpty reports whether a non-blank line exists at index i, i.e. a
// candidate character cue is actually followed by dialogue.
func nextNonEmpty(lines []string, i int) bool {
	return i < len(lines) && strings.TrimSpace(lines[i]) != ""
}
