package markdown

import "strings"

// SpacingAfter returns the number of trailing newlines emitted after a block
// of the given kind. The mapping is presentation policy, but its existence is
// part of the contract: spacing is keyed by kind alone, so rendered output
// stays visually consistent regardless of surrounding content.
func SpacingAfter(kind BlockKind) int {
	switch kind {
	case BlockDivider:
		return 3
	case BlockHeading1, BlockHeading2, BlockHeading3, BlockCode, BlockParagraph:
		return 2
	case BlockBlank:
		return 1
	default: // bullets, checkboxes
		return 1
	}
}

// Render emits the styled text form of the blocks, applying the per-kind
// trailing spacing from SpacingAfter.
func Render(blocks []Block) string {
	var b strings.Builder
	for _, block := range blocks {
		b.WriteString(renderBlock(block))
		b.WriteString(strings.Repeat("\n", SpacingAfter(block.Kind)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// PlainText emits the compact one-line-per-block projection used for
// re-parsing: Parse(PlainText(blocks)) recovers the same non-blank block
// kinds and text.
func PlainText(blocks []Block) string {
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		lines = append(lines, renderBlock(block))
	}
	return strings.Join(lines, "\n")
}

func renderBlock(block Block) string {
	switch block.Kind {
	case BlockHeading1:
		return "# " + block.Text
	case BlockHeading2:
		return "## " + block.Text
	case BlockHeading3:
		return "### " + block.Text
	case BlockDivider:
		return "---"
	case BlockCheckbox:
		if block.Checked {
			return "- [x] " + block.Text
		}
		return "- [ ] " + block.Text
	case BlockBullet:
		return strings.Repeat("  ", block.Indent) + "- " + block.Text
	case BlockCode:
		return fence + "\n" + block.Text + "\n" + fence
	case BlockBlank:
		return ""
	}
	return block.Text
}
