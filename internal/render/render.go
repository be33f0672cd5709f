// Package render converts solutions into human-readable forms: the
// algebraic square list used by the solution printer and an ASCII
// board grid for terminal display. Rendering consumes solver output
// types and performs no computation of its own; the solver never
// imports it back.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csc14us/n-queens/internal/queens"
)

var (
	queenStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Faint(true)
)

// Algebraic renders a solution as space-separated algebraic squares in
// file order, e.g. "a1 b5 c8 d6 e3 f7 g2 h4". Ranks display 1-based.
func Algebraic(sol queens.Solution) string {
	names := make([]string, len(sol))
	for file, rank := range sol {
		names[file] = SquareName(file, rank)
	}
	return strings.Join(names, " ")
}

// SquareName renders one square in algebraic notation. Files past 'z'
// (boards larger than 26, well beyond tractable enumeration) fall back
// to a numeric pair.
func SquareName(file, rank int) string {
	if file < 26 {
		return fmt.Sprintf("%c%d", 'a'+file, rank+1)
	}
	return fmt.Sprintf("(%d,%d)", file, rank)
}

// Board renders a solution as a grid with rank N at the top and file
// labels underneath, queens marked Q:
//
//	4 . Q . .
//	3 . . . Q
//	2 Q . . .
//	1 . . Q .
//	  a b c d
//
// Queen glyphs and labels are styled with lipgloss; on a non-TTY the
// styles degrade to plain text.
func Board(sol queens.Solution) string {
	n := len(sol)
	var b strings.Builder

	width := len(fmt.Sprint(n))
	for rank := n - 1; rank >= 0; rank-- {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%*d", width, rank+1)))
		for file := 0; file < n; file++ {
			b.WriteByte(' ')
			if sol[file] == rank {
				b.WriteString(queenStyle.Render("Q"))
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", width))
	for file := 0; file < n; file++ {
		b.WriteByte(' ')
		if file < 26 {
			b.WriteString(labelStyle.Render(string(rune('a' + file))))
		} else {
			b.WriteString(labelStyle.Render("?"))
		}
	}
	b.WriteByte('\n')
	return b.String()
}
