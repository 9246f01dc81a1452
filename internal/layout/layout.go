// Package layout picks a column arrangement from the terminal width
// and the number of visible lanes. Selection is a pure function; the
// result is recomputed on every resize and never stored.
package layout

type Mode int

const (
	Vertical Mode = iota
	TwoColumn
	FourColumn
)

// Width breakpoints. Terminals narrower than twoColumnMinWidth stack
// lanes vertically; fourColumnMinWidth and up shows all lanes side by
// side.
const (
	twoColumnMinWidth  = 80
	fourColumnMinWidth = 120
)

func (m Mode) String() string {
	switch m {
	case TwoColumn:
		return "two-column"
	case FourColumn:
		return "four-column"
	default:
		return "vertical"
	}
}

// maxColumns is the arrangement's upper bound on side-by-side lanes.
func (m Mode) maxColumns() int {
	switch m {
	case TwoColumn:
		return 2
	case FourColumn:
		return 4
	default:
		return 1
	}
}

// Layout is the chosen arrangement plus the per-column character
// budget it implies.
type Layout struct {
	Mode     Mode
	Columns  int // side-by-side lanes, min(mode max, visible lanes)
	ColWidth int
}

// Select chooses the layout for a terminal width and visible-lane
// count. A width that would leave columns with zero or negative budget
// degrades to Vertical; width <= 0 yields a zero-width Vertical layout
// (the caller renders nothing).
func Select(width, visibleLanes int) Layout {
	if visibleLanes < 1 {
		visibleLanes = 1
	}

	mode := Vertical
	switch {
	case width >= fourColumnMinWidth:
		mode = FourColumn
	case width >= twoColumnMinWidth:
		mode = TwoColumn
	}

	for {
		cols := mode.maxColumns()
		if visibleLanes < cols {
			cols = visibleLanes
		}
		// One separator glyph per column boundary, including both edges.
		w := (width - (cols + 1)) / cols
		if w > 0 {
			return Layout{Mode: mode, Columns: cols, ColWidth: w}
		}
		if mode == Vertical {
			return Layout{Mode: Vertical, Columns: 1, ColWidth: 0}
		}
		mode = Vertical
	}
}
