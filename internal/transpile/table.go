// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import "strings"

// TableBlock renders buffered tab-delimited lines as one xltabular block.
// The first line is the header; its column count fixes the column spec.
// The header repeats after a page break under a "continued" caption, and
// a spacer directive follows every data row. A header with no data rows
// is a complete, valid block.
func (lx *Lexicon) TableBlock(rows []string) string {
	if len(rows) == 0 {
		return ""
	}

	headerCols := strings.Split(rows[0], "\t")
	colSpec := strings.Repeat("X", len(headerCols))

	headerCells := make([]string, len(headerCols))
	for i, h := range headerCols {
		headerCells[i] = `\textbf{` + lx.SegmentInline(strings.TrimSpace(h)) + `}`
	}
	headerRow := strings.Join(headerCells, " & ") + ` \\`

	block := []string{
		`\begin{xltabular}{\textwidth}{@{}` + colSpec + `@{}}`,
		`\caption{Auto-generated table} \\`,
		`\toprule`,
		headerRow,
		`\midrule`,
		`\endfirsthead`,
		`\caption[]{Auto-generated table (continued)} \\`,
		`\toprule`,
		headerRow,
		`\midrule`,
		`\endhead`,
		`\bottomrule`,
		`\endfoot`,
	}

	for _, row := range rows[1:] {
		cols := strings.Split(row, "\t")
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = lx.SegmentInline(strings.TrimSpace(c))
		}
		block = append(block, strings.Join(cells, " & ")+` \\`, `\addlinespace`)
	}

	block = append(block, `\end{xltabular}`)
	return strings.Join(block, "\n")
}
