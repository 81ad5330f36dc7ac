// Package layout maps block types to the fixed industry-format layout rules
// and performs the one cross-block transform of the pipeline, the
// parenthetical/dialogue merge.
package layout

import "github.com/screenply/screenply/internal/document"

// Alignment is the horizontal placement of a block's lines.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Counter identifies which running number a block type advances.
type Counter int

const (
	CounterNone Counter = iota
	CounterScene
	CounterDialogue
	CounterTransition
)

// NumberSide is the margin a running-number label is placed in.
type NumberSide int

const (
	NumberLeft NumberSide = iota
	NumberRight
)

// Descriptor is the static layout rule for one block type. Distances are in
// points; LeftIndent is measured from the page's left content edge and
// WidthFraction is the fraction of the content width available before the
// indent is subtracted.
type Descriptor struct {
	LeftIndent    float64
	WidthFraction float64
	Align         Alignment
	Uppercase     bool
	Bold          bool
	Italic        bool
	SpaceBefore   float64
	SpaceAfter    float64
	Counter       Counter
	NumberSide    NumberSide
}

// baseLine is one line of vertical space at the standard 12pt/1.2 format.
const baseLine = 14.4

var (
	sceneHeadingDesc = Descriptor{
		WidthFraction: 1.0, Align: AlignLeft, Uppercase: true, Bold: true,
		SpaceBefore: baseLine, SpaceAfter: baseLine,
		Counter: CounterScene, NumberSide: NumberLeft,
	}
	actionDesc = Descriptor{
		WidthFraction: 1.0, Align: AlignLeft, SpaceAfter: baseLine,
	}
	characterDesc = Descriptor{
		LeftIndent: 200, WidthFraction: 0.8, Align: AlignLeft,
		Uppercase: true, SpaceBefore: baseLine,
	}
	dialogueDesc = Descriptor{
		LeftIndent: 130, WidthFraction: 0.75, Align: AlignLeft,
		SpaceAfter: baseLine,
		Counter:    CounterDialogue, NumberSide: NumberRight,
	}
	parentheticalDesc = Descriptor{
		LeftIndent: 165, WidthFraction: 0.7, Align: AlignLeft, Italic: true,
	}
	transitionDesc = Descriptor{
		WidthFraction: 1.0, Align: AlignRight, Uppercase: true,
		SpaceBefore: baseLine, SpaceAfter: baseLine,
		Counter: CounterTransition, NumberSide: NumberRight,
	}
	shotDesc = Descriptor{
		WidthFraction: 1.0, Align: AlignLeft, Uppercase: true,
		SpaceBefore: baseLine, SpaceAfter: baseLine,
	}
	textDesc = Descriptor{
		WidthFraction: 1.0, Align: AlignLeft, SpaceAfter: baseLine,
	}
)

// Resolve returns the layout descriptor for a block type. The table is total
// over the enumeration; anything unrecognized is laid out as action.
func Resolve(t document.BlockType) Descriptor {
	switch t {
	case document.SceneHeading:
		return sceneHeadingDesc
	case document.Action:
		return actionDesc
	case document.Character:
		return characterDesc
	case document.Dialogue:
		return dialogueDesc
	case document.Parenthetical:
		return parentheticalDesc
	case document.Transition:
		return transitionDesc
	case document.Shot:
		return shotDesc
	case document.Text:
		return textDesc
	default:
		return actionDesc
	}
}
