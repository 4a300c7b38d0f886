package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"managerdocs/internal/markdown"
)

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name string
		line string
		want markdown.Block
	}{
		{"heading1", "# Summary", markdown.Block{Kind: markdown.BlockHeading1, Text: "Summary"}},
		{"heading2", "## Key Points", markdown.Block{Kind: markdown.BlockHeading2, Text: "Key Points"}},
		{"heading3", "### Detail", markdown.Block{Kind: markdown.BlockHeading3, Text: "Detail"}},
		{"divider dash", "---", markdown.Block{Kind: markdown.BlockDivider}},
		{"divider star", "***", markdown.Block{Kind: markdown.BlockDivider}},
		{"divider underscore", "___", markdown.Block{Kind: markdown.BlockDivider}},
		{"divider trailing spaces", "---  ", markdown.Block{Kind: markdown.BlockDivider}},
		{"unchecked box", "- [ ] follow up with infra", markdown.Block{Kind: markdown.BlockCheckbox, Text: "follow up with infra"}},
		{"checked box lower", "- [x] send calendar invite", markdown.Block{Kind: markdown.BlockCheckbox, Text: "send calendar invite", Checked: true}},
		{"checked box upper", "- [X] send calendar invite", markdown.Block{Kind: markdown.BlockCheckbox, Text: "send calendar invite", Checked: true}},
		{"star checkbox", "* [ ] review design doc", markdown.Block{Kind: markdown.BlockCheckbox, Text: "review design doc"}},
		{"bullet dash", "- growth area", markdown.Block{Kind: markdown.BlockBullet, Text: "growth area"}},
		{"bullet star", "* growth area", markdown.Block{Kind: markdown.BlockBullet, Text: "growth area"}},
		{"nested bullet", "    - sub point", markdown.Block{Kind: markdown.BlockBullet, Text: "sub point", Indent: 2}},
		{"paragraph", "Alex shipped the migration.", markdown.Block{Kind: markdown.BlockParagraph, Text: "Alex shipped the migration."}},
		{"blank", "   ", markdown.Block{Kind: markdown.BlockBlank}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := markdown.Parse(tt.line)
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.want, blocks[0])
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	assert.Nil(t, markdown.Parse(""))
}

func TestParseHeadingPrecedence(t *testing.T) {
	// "### " must win over "## " and "# " prefixes.
	blocks := markdown.Parse("### deep\n## mid\n# top")
	require.Len(t, blocks, 3)
	assert.Equal(t, markdown.BlockHeading3, blocks[0].Kind)
	assert.Equal(t, markdown.BlockHeading2, blocks[1].Kind)
	assert.Equal(t, markdown.BlockHeading1, blocks[2].Kind)
}

func TestParseHeadingWithoutSpaceIsParagraph(t *testing.T) {
	blocks := markdown.Parse("#nospace")
	require.Len(t, blocks, 1)
	assert.Equal(t, markdown.BlockParagraph, blocks[0].Kind)
	assert.Equal(t, "#nospace", blocks[0].Text)
}

func TestParseBlankCollapse(t *testing.T) {
	blocks := markdown.Parse("one\n\n\n\ntwo")
	require.Len(t, blocks, 3)
	assert.Equal(t, markdown.BlockParagraph, blocks[0].Kind)
	assert.Equal(t, markdown.BlockBlank, blocks[1].Kind)
	assert.Equal(t, markdown.BlockParagraph, blocks[2].Kind)
}

func TestParseCodeFence(t *testing.T) {
	input := "before\n```\nSELECT 1;\nSELECT 2;\n```\nafter"
	blocks := markdown.Parse(input)
	require.Len(t, blocks, 3)
	assert.Equal(t, markdown.BlockParagraph, blocks[0].Kind)
	assert.Equal(t, markdown.BlockCode, blocks[1].Kind)
	assert.Equal(t, "SELECT 1;\nSELECT 2;", blocks[1].Text)
	assert.Equal(t, "after", blocks[2].Text)
}

func TestParseUnterminatedFenceFlushes(t *testing.T) {
	blocks := markdown.Parse("intro\n```\nstill inside\nno closer")
	require.Len(t, blocks, 2)
	assert.Equal(t, markdown.BlockCode, blocks[1].Kind)
	assert.Equal(t, "still inside\nno closer", blocks[1].Text)
}

func TestParseFenceSuppressesClassification(t *testing.T) {
	blocks := markdown.Parse("```\n# not a heading\n- [ ] not a checkbox\n```")
	require.Len(t, blocks, 1)
	assert.Equal(t, markdown.BlockCode, blocks[0].Kind)
	assert.Equal(t, "# not a heading\n- [ ] not a checkbox", blocks[0].Text)
}

func TestParseIsTotal(t *testing.T) {
	// Arbitrary junk still yields a valid block per line.
	inputs := []string{
		"- [y] almost a checkbox",
		"-[ ] missing space",
		"----",
		"*",
		"\t- tabbed bullet?",
		"## ",
	}
	for _, input := range inputs {
		blocks := markdown.Parse(input)
		require.NotEmpty(t, blocks, "input %q", input)
		for _, b := range blocks {
			assert.NotEmpty(t, string(b.Kind))
		}
	}
}

func TestCheckboxes(t *testing.T) {
	blocks := markdown.Parse("## Action Items\n- [ ] first\nsome text\n- [x] second\n- plain bullet")
	boxes := markdown.Checkboxes(blocks)
	require.Len(t, boxes, 2)
	assert.Equal(t, "first", boxes[0].Text)
	assert.False(t, boxes[0].Checked)
	assert.Equal(t, "second", boxes[1].Text)
	assert.True(t, boxes[1].Checked)
}
