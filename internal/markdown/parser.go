package markdown

import "strings"

const fence = "```"

// Parse classifies input line by line, first match wins: headings, divider,
// checkboxes, bullets, blank (consecutive blanks collapse to one), paragraph.
// A line of exactly three backticks toggles code-fence mode; fenced lines are
// accumulated verbatim into a single code block. An unterminated fence at end
// of input flushes the accumulated lines as a best-effort code block.
func Parse(input string) []Block {
	if input == "" {
		return nil
	}

	var blocks []Block
	var codeLines []string
	inCode := false

	for _, rawLine := range strings.Split(input, "\n") {
		line := strings.TrimRight(rawLine, "\r")

		if strings.TrimRight(line, " \t") == fence {
			if inCode {
				blocks = append(blocks, Block{Kind: BlockCode, Text: strings.Join(codeLines, "\n")})
				codeLines = nil
				inCode = false
			} else {
				inCode = true
			}
			continue
		}
		if inCode {
			codeLines = append(codeLines, line)
			continue
		}

		blocks = appendBlock(blocks, classify(line))
	}

	if inCode {
		blocks = append(blocks, Block{Kind: BlockCode, Text: strings.Join(codeLines, "\n")})
	}
	return blocks
}

// appendBlock collapses runs of blank blocks to a single one.
func appendBlock(blocks []Block, b Block) []Block {
	if b.Kind == BlockBlank && len(blocks) > 0 && blocks[len(blocks)-1].Kind == BlockBlank {
		return blocks
	}
	return append(blocks, b)
}

func classify(line string) Block {
	trimmed := strings.TrimLeft(line, " ")
	leading := len(line) - len(trimmed)

	switch {
	case strings.HasPrefix(trimmed, "### "):
		return Block{Kind: BlockHeading3, Text: strings.TrimPrefix(trimmed, "### ")}
	case strings.HasPrefix(trimmed, "## "):
		return Block{Kind: BlockHeading2, Text: strings.TrimPrefix(trimmed, "## ")}
	case strings.HasPrefix(trimmed, "# "):
		return Block{Kind: BlockHeading1, Text: strings.TrimPrefix(trimmed, "# ")}
	}

	if t := strings.TrimRight(trimmed, " \t"); t == "---" || t == "***" || t == "___" {
		return Block{Kind: BlockDivider}
	}

	if text, ok := checkboxText(trimmed, false); ok {
		return Block{Kind: BlockCheckbox, Text: text}
	}
	if text, ok := checkboxText(trimmed, true); ok {
		return Block{Kind: BlockCheckbox, Text: text, Checked: true}
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return Block{Kind: BlockBullet, Text: trimmed[2:], Indent: leading / 2}
	}

	if strings.TrimSpace(line) == "" {
		return Block{Kind: BlockBlank}
	}
	return Block{Kind: BlockParagraph, Text: line}
}

// checkboxText matches "- [ ] "/"* [ ] " (checked=false) or the
// case-insensitive "- [x] "/"* [x] " forms (checked=true).
func checkboxText(trimmed string, checked bool) (string, bool) {
	if len(trimmed) < 6 {
		return "", false
	}
	if trimmed[0] != '-' && trimmed[0] != '*' {
		return "", false
	}
	marker := trimmed[1:6]
	if checked {
		if marker != " [x] " && marker != " [X] " {
			return "", false
		}
	} else if marker != " [ ] " {
		return "", false
	}
	return trimmed[6:], true
}
