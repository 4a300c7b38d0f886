// Package markdown converts LLM output into an ordered sequence of typed
// blocks and renders them back with stable per-kind styling. Parsing is a
// single left-to-right pass, pure, and total: every input produces a valid
// block sequence.
package markdown

type BlockKind string

const (
	BlockHeading1  BlockKind = "heading1"
	BlockHeading2  BlockKind = "heading2"
	BlockHeading3  BlockKind = "heading3"
	BlockDivider   BlockKind = "divider"
	BlockCheckbox  BlockKind = "checkbox"
	BlockBullet    BlockKind = "bullet"
	BlockCode      BlockKind = "code"
	BlockBlank     BlockKind = "blank"
	BlockParagraph BlockKind = "paragraph"
)

// Block is one structurally classified unit of parsed text. Indent is only
// meaningful for bullets (leading spaces / 2); Checked only for checkboxes.
// Code blocks hold their fenced lines joined by newlines in Text.
type Block struct {
	Kind    BlockKind `json:"kind"`
	Text    string    `json:"text,omitempty"`
	Indent  int       `json:"indent,omitempty"`
	Checked bool      `json:"checked,omitempty"`
}

// Checkboxes returns the checkbox blocks, preserving order. Used to pull
// generated action items back out of a rendered summary.
func Checkboxes(blocks []Block) []Block {
	var out []Block
	for _, b := range blocks {
		if b.Kind == BlockCheckbox {
			out = append(out, b)
		}
	}
	return out
}
