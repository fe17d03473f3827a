// Package analysis derives the adjacency matrix and work indexes of a roster.
package analysis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kingrea/teamalys3r/internal/roster"
)

// MatrixHeader is printed before the matrix rows.
const MatrixHeader = "Adjacency matrix:"

// Matrix is the square 0/1 adjacency table over the roster's member order.
// Cells[i][j] is 1 when Members[j] appears in Members[i]'s list.
type Matrix struct {
	Members []string
	Cells   [][]int
}

// Adjacency builds the matrix. Collaborators that never have a line of their
// own get no column. The diagonal is 1 only for members listing themselves.
func Adjacency(r *roster.Roster) Matrix {
	members := r.Members()
	cells := make([][]int, len(members))
	for i, member := range members {
		row := make([]int, len(members))
		for j, other := range members {
			if r.WorkedWith(member, other) {
				row[j] = 1
			}
		}
		cells[i] = row
	}
	return Matrix{Members: members, Cells: cells}
}

// Size returns the number of rows (and columns).
func (m Matrix) Size() int {
	return len(m.Members)
}

// Symmetric reports whether every collaboration was declared from both sides.
func (m Matrix) Symmetric() bool {
	for i := range m.Cells {
		for j := i + 1; j < len(m.Cells); j++ {
			if m.Cells[i][j] != m.Cells[j][i] {
				return false
			}
		}
	}
	return true
}

// FormatRow renders a row as "[0, 1, 1]".
func FormatRow(row []int) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// WriteMatrix prints the header followed by one line per row.
func WriteMatrix(w io.Writer, m Matrix) error {
	if _, err := fmt.Fprintln(w, MatrixHeader); err != nil {
		return err
	}
	for _, row := range m.Cells {
		if _, err := fmt.Fprintln(w, FormatRow(row)); err != nil {
			return err
		}
	}
	return nil
}
