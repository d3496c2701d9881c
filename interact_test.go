package immi

import "testing"

// resolveAt runs one interaction frame with the cursor at (x, y) and the
// given button edges.
func resolveAt(tree *Tree, table PressTable, x, y float64, pressed, released, down bool) Results {
	return Resolve(tree, Input{
		CursorX:       x,
		CursorY:       y,
		CursorPresent: true,
		Pressed:       pressed,
		Released:      released,
		Down:          down,
	}, table)
}

func TestHoverTopmostWins(t *testing.T) {
	tree := buildTree(t, Rect{Width: 100, Height: 100},
		Stack(Leaf("below", nil), Leaf("above", nil)))

	res := resolveAt(tree, make(PressTable), 50, 50, false, false, false)
	if !res.Hovered("above") {
		t.Error("later-declared widget is not hovered")
	}
	if res.Hovered("below") {
		t.Error("covered widget is hovered")
	}
}

func TestHoverExactlyOneWidget(t *testing.T) {
	tree := buildTree(t, Rect{Width: 100, Height: 100},
		Split(Horizontal, Leaf("left", nil), Leaf("right", nil)))

	res := resolveAt(tree, make(PressTable), 25, 50, false, false, false)
	if !res.Hovered("left") || res.Hovered("right") {
		t.Errorf("hover = left:%v right:%v, want left only",
			res.Hovered("left"), res.Hovered("right"))
	}
}

func TestHoverCursorAbsent(t *testing.T) {
	tree := buildTree(t, Rect{Width: 100, Height: 100}, Leaf("w", nil))

	res := Resolve(tree, Input{CursorX: 50, CursorY: 50}, make(PressTable))
	if res.AnyHovered() {
		t.Error("widget hovered while the cursor is absent")
	}
}

func TestEmptyIDNotInteractive(t *testing.T) {
	tree := buildTree(t, Rect{Width: 100, Height: 100},
		Stack(Leaf("named", nil), Spacer()))

	res := resolveAt(tree, make(PressTable), 50, 50, false, false, false)
	if !res.Hovered("named") {
		t.Error("id-carrying widget should hover through an id-less overlay")
	}
}

func TestDuplicateIDLastDeclarationWins(t *testing.T) {
	tree := buildTree(t, Rect{Width: 100, Height: 100},
		Split(Horizontal, Leaf("dup", nil), Leaf("dup", nil)))

	// Cursor over the first of the two: the last declaration owns the id,
	// so the id is not hovered.
	res := resolveAt(tree, make(PressTable), 25, 50, false, false, false)
	if res.Hovered("dup") {
		t.Error("duplicate id hovered via the earlier declaration")
	}
	res = resolveAt(tree, make(PressTable), 75, 50, false, false, false)
	if !res.Hovered("dup") {
		t.Error("duplicate id not hovered via the last declaration")
	}
}

func TestDeclaredIDsAlwaysPresent(t *testing.T) {
	tree := buildTree(t, Rect{Width: 100, Height: 100},
		Split(Horizontal, Leaf("a", nil), Leaf("b", nil)))

	res := Resolve(tree, Input{}, make(PressTable))
	for _, id := range []WidgetID{"a", "b"} {
		if _, ok := res[id]; !ok {
			t.Errorf("declared id %q missing from results", id)
		}
	}
	if _, ok := res[""]; ok {
		t.Error("empty id present in results")
	}
}

func TestClickSequence(t *testing.T) {
	tree := buildTree(t, Rect{Width: 100, Height: 100},
		Split(Horizontal, Leaf("btn", nil), Spacer()))
	table := make(PressTable)

	var script InputScript
	script.Click(25, 50)

	in, _ := script.Next()
	res := Resolve(tree, in, table)
	if !res.Pressed("btn") {
		t.Error("press frame: btn not pressed")
	}
	if res.Clicked("btn") {
		t.Error("press frame: btn already clicked")
	}

	in, _ = script.Next()
	res = Resolve(tree, in, table)
	if !res.Clicked("btn") {
		t.Error("release frame: btn not clicked")
	}
	if res.Cancelled("btn") {
		t.Error("release frame: btn cancelled")
	}
	if len(table) != 0 {
		t.Errorf("press table still holds %d entries after release", len(table))
	}
}

func TestDragOffCancelsClick(t *testing.T) {
	tree := buildTree(t, Rect{Width: 100, Height: 100},
		Split(Horizontal, Leaf("btn", nil), Spacer()))
	table := make(PressTable)

	var script InputScript
	script.Drag(25, 50, 75, 50, 4)

	for in, ok := script.Next(); ok; in, ok = script.Next() {
		res := Resolve(tree, in, table)
		if in.Released {
			if res.Clicked("btn") {
				t.Error("release off-widget reported a click")
			}
			if !res.Cancelled("btn") {
				t.Error("release off-widget did not cancel")
			}
		}
	}
}

func TestHeldPressReportsPressedOffWidget(t *testing.T) {
	tree := buildTree(t, Rect{Width: 100, Height: 100},
		Split(Horizontal, Leaf("btn", nil), Spacer()))
	table := make(PressTable)

	var script InputScript
	script.Press(25, 50)
	script.Move(75, 50)
	script.Move(75, 50)

	for in, ok := script.Next(); ok; in, ok = script.Next() {
		res := Resolve(tree, in, table)
		if !res.Pressed("btn") {
			t.Errorf("btn not pressed while the button is held (cursor at %v,%v)",
				in.CursorX, in.CursorY)
		}
	}
}

func TestReleaseBackOnWidgetClicks(t *testing.T) {
	tree := buildTree(t, Rect{Width: 100, Height: 100},
		Split(Horizontal, Leaf("btn", nil), Spacer()))
	table := make(PressTable)

	var script InputScript
	script.Press(25, 50)
	script.Move(75, 50) // wander off
	script.Release(25, 50)

	var last Results
	for in, ok := script.Next(); ok; in, ok = script.Next() {
		last = Resolve(tree, in, table)
	}
	if !last.Clicked("btn") {
		t.Error("release back on the widget did not click")
	}
}

func TestPressOutsideAnyWidget(t *testing.T) {
	tree := buildTree(t, Rect{Width: 100, Height: 100},
		Margin(UniformInsets(0.4), Leaf("center", nil)))
	table := make(PressTable)

	res := resolveAt(tree, table, 5, 5, true, false, true)
	if len(table) != 0 {
		t.Error("press outside any widget bound the table")
	}
	if res.Pressed("center") {
		t.Error("press outside reported pressed")
	}
}

func TestRotatedNodeHitTest(t *testing.T) {
	// Give a widget an animated placement that rotates it; the hit test
	// must follow the transform, not the axis-aligned rect.
	e := NewEngine()
	tree := e.BuildLayout(Rect{Width: 100, Height: 100},
		Stack(Leaf("plain", nil)))
	n := nodeByID(t, tree, "plain")
	// Shrink and rotate the node in place around the root center.
	n.Transform = Translate(50, 50).Mul(Rotate(0.78)).Mul(ScaleXY(20, 20))

	res := resolveAt(tree, make(PressTable), 55, 60, false, false, false)
	if !res.Hovered("plain") {
		t.Error("point inside the rotated widget did not hover")
	}
	res = resolveAt(tree, make(PressTable), 60, 45, false, false, false)
	if res.Hovered("plain") {
		t.Error("point outside the rotated widget hovered")
	}
}
