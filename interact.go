package immi

// Input is the per-frame pointer snapshot, in root coordinate space.
// Button state is expressed as edge transitions so the resolver never has to
// poll the host windowing layer.
type Input struct {
	CursorX, CursorY float64

	// CursorPresent is false when the pointer is outside the window or the
	// platform has no pointer; nothing hovers in that case.
	CursorPresent bool

	Pressed  bool // button went down this frame
	Released bool // button went up this frame
	Down     bool // button is held (including the frame it went down)
}

// InteractionResult carries the per-widget interaction flags for one frame.
// All flags are computed fresh each frame.
type InteractionResult struct {
	Hovered   bool // topmost widget under the cursor
	Pressed   bool // press started on this widget and the button is still down
	Clicked   bool // pressed and released on this widget
	Cancelled bool // pressed on this widget, released elsewhere
}

// PressTable records which correlation ids hold an active press. It is the
// only state the engine carries across frames; [Engine] owns one, but callers
// driving [Resolve] directly may own it themselves. Never shared between
// engines.
type PressTable map[WidgetID]struct{}

// Results maps correlation ids to their interaction flags for one frame.
// Lookups of undeclared ids return the zero result.
type Results map[WidgetID]InteractionResult

// Get returns the flags for id, or the zero result for the empty id or an
// id that was not declared this frame.
func (r Results) Get(id WidgetID) InteractionResult {
	if id == "" {
		return InteractionResult{}
	}
	return r[id]
}

// Hovered reports whether id is the topmost widget under the cursor.
func (r Results) Hovered(id WidgetID) bool { return r.Get(id).Hovered }

// Pressed reports whether id holds an active press.
func (r Results) Pressed(id WidgetID) bool { return r.Get(id).Pressed }

// Clicked reports whether id was clicked this frame.
func (r Results) Clicked(id WidgetID) bool { return r.Get(id).Clicked }

// Cancelled reports whether id's press was cancelled this frame.
func (r Results) Cancelled(id WidgetID) bool { return r.Get(id).Cancelled }

// AnyHovered reports whether any widget is under the cursor. When false, the
// pointer is over whatever sits behind the UI.
func (r Results) AnyHovered() bool {
	for _, v := range r {
		if v.Hovered {
			return true
		}
	}
	return false
}

// Resolve computes interaction flags for every widget in the tree and
// updates the press table in place.
//
// Hover goes to the single widget with the highest draw-order index whose
// region contains the cursor; draw order is a total order, so there are no
// ties. A press binds the hovered id into the table; on release the id
// reports a click if it is hovered again, a cancel otherwise, and leaves the
// table either way. While the button stays down the bound id keeps reporting
// Pressed regardless of hover — the table is written once at press time and
// not updated until release.
func Resolve(t *Tree, in Input, table PressTable) Results {
	res := make(Results)

	var hovered WidgetID
	var found bool
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.ID == "" {
			continue
		}
		if _, ok := res[n.ID]; !ok {
			res[n.ID] = InteractionResult{}
		}
		// Forward scan: a later containing node overwrites an earlier one,
		// which selects the topmost widget and makes the last declaration
		// win for duplicate ids.
		if in.CursorPresent && n.Transform.hits(in.CursorX, in.CursorY) {
			hovered = n.ID
			found = true
		}
	}

	if found {
		r := res[hovered]
		r.Hovered = true
		res[hovered] = r
	}

	if in.Pressed && found {
		if _, already := table[hovered]; !already {
			table[hovered] = struct{}{}
		}
		r := res[hovered]
		r.Pressed = true
		res[hovered] = r
	}

	if in.Released {
		for id := range table {
			r := res[id]
			if found && id == hovered {
				r.Clicked = true
			} else {
				r.Cancelled = true
			}
			res[id] = r
			delete(table, id)
		}
	} else {
		for id := range table {
			r := res[id]
			r.Pressed = true
			res[id] = r
		}
	}

	return res
}
