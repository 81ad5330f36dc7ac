package layout

import "github.com/screenply/screenply/internal/document"

// MergeParentheticals combines each parenthetical block that is immediately
// followed by a dialogue block into a single derived dialogue block whose
// content is the two contents joined by one space. The scan is a single
// pass; input blocks are never mutated. A parenthetical with no following
// dialogue (end of sequence, or followed by another type) is left as-is and
// renders with its own descriptor.
func MergeParentheticals(blocks []document.Block) []document.Block {
	out := make([]document.Block, 0, len(blocks))
	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		if b.Type == document.Parenthetical && i+1 < len(blocks) && blocks[i+1].Type == document.Dialogue {
			next := blocks[i+1]
			out = append(out, document.Block{
				ID:      next.ID,
				Type:    document.Dialogue,
				Content: b.Content + " " + next.Content,
			})
			i++
			continue
		}
		out = append(out, b)
	}
	return out
}
