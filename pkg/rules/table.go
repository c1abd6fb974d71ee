// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rules

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"laptudirm.com/x/fairplay/pkg/moves"
)

// Table is the full grid of outcomes for a move set, with the outcome of
// the row move against the column move in each cell.
type Table struct {
	labels []string
	cells  [][]Outcome
}

// NewTable generates the outcome Table of the given move set.
func NewTable(set *moves.Set) *Table {
	n := set.Len()

	table := Table{
		labels: set.Labels(),
		cells:  make([][]Outcome, n),
	}

	for row := range table.cells {
		table.cells[row] = make([]Outcome, n)
		for col := range table.cells[row] {
			table.cells[row][col] = Decide(n, row, col)
		}
	}

	return &table
}

// Size returns the number of rows (and columns) of the Table.
func (table *Table) Size() int {
	return len(table.labels)
}

// Cell returns the Outcome of the row move against the column move.
func (table *Table) Cell(row, col int) Outcome {
	return table.cells[row][col]
}

// cellText labels a cell from the row move's point of view.
func cellText(outcome Outcome) string {
	switch outcome {
	case FirstWins:
		return "Win"
	case SecondWins:
		return "Lose"
	default:
		return "Draw"
	}
}

// String renders the Table as a box drawn grid.
func (table *Table) String() string {
	width := len("Draw")
	for _, label := range table.labels {
		width = max(width, utf8.RuneCountInString(label))
	}

	n := len(table.labels)
	inner := 2 + (n+1)*width + n*3

	var b strings.Builder
	row := func(first string, rest []string) {
		b.WriteString("║ ")
		fmt.Fprintf(&b, "%-*s", width, first)
		for _, cell := range rest {
			fmt.Fprintf(&b, " │ %-*s", width, cell)
		}
		b.WriteString(" ║\n")
	}

	b.WriteString("Outcome of the row move against the column move:\n")
	b.WriteString("╔" + strings.Repeat("═", inner) + "╗\n")
	row("", table.labels)
	b.WriteString("╟" + strings.Repeat("─", inner) + "╢\n")
	for i, label := range table.labels {
		cells := make([]string, n)
		for j := range cells {
			cells[j] = cellText(table.cells[i][j])
		}
		row(label, cells)
	}
	b.WriteString("╚" + strings.Repeat("═", inner) + "╝\n")

	return b.String()
}

// WriteTo writes the rendered Table to w.
func (table *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, table.String())
	return int64(n), err
}
