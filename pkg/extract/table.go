package extract

import (
	"regexp"
	"strings"
)

// columnSplitRE splits a table row on pipes or runs of two-plus spaces.
var columnSplitRE = regexp.MustCompile(`\s*\|\s*|\s{2,}|\t+`)

// Table extracts fields from tabular content: a header row of column
// labels followed by data rows. Orders that annex account lists usually
// arrive this way.
type Table struct{}

// NewTable creates the table strategy.
func NewTable() *Table {
	return &Table{}
}

// Name identifies the strategy.
func (t *Table) Name() string { return "table" }

// CanHandle looks for a header row where at least two columns carry
// recognized labels and at least one data row follows it.
func (t *Table) CanHandle(text string) int {
	header, rows := t.locate(text)
	if header == -1 || rows == 0 {
		return 0
	}
	return 75
}

// Extract maps the recognized header columns onto the first data row.
func (t *Table) Extract(text string) *Fields {
	fields := NewFields()
	lines := strings.Split(text, "\n")
	header, rows := t.locate(text)
	if header == -1 || rows == 0 {
		return fields
	}

	columns := splitRow(lines[header])
	mapping := make(map[int]string, len(columns))
	for i, col := range columns {
		if field := canonicalField(col); field != "" {
			mapping[i] = field
		}
	}

	for _, line := range lines[header+1:] {
		cells := splitRow(line)
		if len(cells) < 2 {
			continue
		}
		for i, cell := range cells {
			if field, ok := mapping[i]; ok {
				fields.Set(field, cell)
			}
		}
		break // first data row carries the order's subject
	}
	return fields
}

// locate finds the header row index and counts data rows after it.
func (t *Table) locate(text string) (header, rows int) {
	header = -1
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		cells := splitRow(line)
		if len(cells) < 2 {
			continue
		}
		if header == -1 {
			known := 0
			for _, cell := range cells {
				if canonicalField(cell) != "" {
					known++
				}
			}
			if known >= 2 {
				header = i
			}
			continue
		}
		if i > header {
			rows++
		}
	}
	return header, rows
}

func splitRow(line string) []string {
	var cells []string
	for _, cell := range columnSplitRE.Split(strings.TrimSpace(line), -1) {
		cell = strings.Trim(cell, " |")
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}
