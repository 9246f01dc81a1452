package layout

import "testing"

func TestSelect_Breakpoints(t *testing.T) {
	cases := []struct {
		width int
		want  Mode
	}{
		{1, Vertical},
		{40, Vertical},
		{79, Vertical},
		{80, TwoColumn},
		{100, TwoColumn},
		{119, TwoColumn},
		{120, FourColumn},
		{200, FourColumn},
	}
	for _, tc := range cases {
		if got := Select(tc.width, 4); got.Mode != tc.want {
			t.Fatalf("Select(%d, 4): expected %v, got %v", tc.width, tc.want, got.Mode)
		}
	}
}

func TestSelect_ColumnCountBoundedByVisibleLanes(t *testing.T) {
	// Width 100 selects the two-column arrangement; three visible lanes
	// still cap at two side-by-side columns.
	lay := Select(100, 3)
	if lay.Mode != TwoColumn {
		t.Fatalf("expected TwoColumn, got %v", lay.Mode)
	}
	if lay.Columns != 2 {
		t.Fatalf("expected 2 columns, got %d", lay.Columns)
	}

	// One visible lane degrades every arrangement to a single column.
	lay = Select(150, 1)
	if lay.Columns != 1 {
		t.Fatalf("expected 1 column, got %d", lay.Columns)
	}
}

func TestSelect_ColumnWidthAccounting(t *testing.T) {
	// Width budget per column is (total - separators) / columns, with
	// one separator per boundary including both edges.
	lay := Select(120, 4)
	if lay.ColWidth != (120-5)/4 {
		t.Fatalf("expected col width %d, got %d", (120-5)/4, lay.ColWidth)
	}
	lay = Select(100, 4)
	if lay.ColWidth != (100-3)/2 {
		t.Fatalf("expected col width %d, got %d", (100-3)/2, lay.ColWidth)
	}
}

func TestSelect_WidthMonotonicWithinMode(t *testing.T) {
	for _, lanes := range []int{1, 2, 3, 4} {
		prevMode := Mode(-1)
		prevWidth := 0
		for w := 1; w <= 300; w++ {
			lay := Select(w, lanes)
			if lay.Mode == prevMode && lay.ColWidth < prevWidth {
				t.Fatalf("lanes=%d width=%d: column width shrank from %d to %d within %v",
					lanes, w, prevWidth, lay.ColWidth, lay.Mode)
			}
			prevMode = lay.Mode
			prevWidth = lay.ColWidth
		}
	}
}

func TestSelect_NeverNegativeWidth(t *testing.T) {
	for _, lanes := range []int{0, 1, 2, 3, 4} {
		for w := -5; w <= 130; w++ {
			lay := Select(w, lanes)
			if lay.ColWidth < 0 {
				t.Fatalf("Select(%d, %d): negative column width %d", w, lanes, lay.ColWidth)
			}
			if lay.ColWidth == 0 && lay.Mode != Vertical {
				t.Fatalf("Select(%d, %d): zero width without Vertical fallback (%v)", w, lanes, lay.Mode)
			}
		}
	}
}

func TestSelect_DegenerateWidth(t *testing.T) {
	lay := Select(0, 4)
	if lay.Mode != Vertical || lay.ColWidth != 0 {
		t.Fatalf("expected zero-width Vertical layout, got %+v", lay)
	}
}
