package model

import (
	"regexp"
	"strings"
)

// spaceSeparator matches the cell boundary of the space-separated
// style: two or more spaces, or any run of tabs.
var spaceSeparator = regexp.MustCompile(`[ ]{2,}|\t+`)

// SplitRow splits one physical line into cells. Lines starting with a
// pipe use the pipe-separated style, everything else the
// space-separated style.
func SplitRow(line string) Row {
	if strings.HasPrefix(line, "| ") || line == "|" {
		return splitPipeRow(line)
	}

	return splitSpaceRow(line)
}

func splitPipeRow(line string) Row {
	body := strings.TrimPrefix(line, "|")
	body = strings.TrimPrefix(body, " ")
	if strings.HasSuffix(body, " |") {
		body = strings.TrimSuffix(body, " |")
	} else {
		body = strings.TrimSuffix(body, "|")
	}

	// Left-to-right split on the literal separator keeps empty cells
	// (rendered as `|  |`) intact.
	parts := strings.Split(body, " | ")
	cells := make(Row, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}

	return trimTrailingEmpty(cells)
}

func splitSpaceRow(line string) Row {
	parts := spaceSeparator.Split(line, -1)
	cells := make(Row, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		// An escaped empty cell marks intentionally blank columns in
		// the space-separated style.
		if p == `\` {
			p = ""
		}
		cells = append(cells, p)
	}

	return trimTrailingEmpty(cells)
}

func trimTrailingEmpty(cells Row) Row {
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	if len(cells) == 0 {
		return nil
	}

	return cells
}
