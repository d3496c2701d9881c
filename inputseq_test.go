package immi

import "testing"

// drain pops all queued inputs.
func drain(s *InputScript) []Input {
	var out []Input
	for in, ok := s.Next(); ok; in, ok = s.Next() {
		out = append(out, in)
	}
	return out
}

func TestScriptClickEdges(t *testing.T) {
	var s InputScript
	s.Click(10, 20)

	ins := drain(&s)
	if len(ins) != 2 {
		t.Fatalf("got %d frames, want 2", len(ins))
	}

	press := ins[0]
	if !press.Pressed || press.Released || !press.Down {
		t.Errorf("press frame edges = %+v", press)
	}
	assertNear(t, "press x", press.CursorX, 10)
	assertNear(t, "press y", press.CursorY, 20)

	release := ins[1]
	if release.Pressed || !release.Released || release.Down {
		t.Errorf("release frame edges = %+v", release)
	}
}

func TestScriptHoldHasSingleEdge(t *testing.T) {
	var s InputScript
	s.Press(0, 0)
	s.Move(1, 0)
	s.Move(2, 0)
	s.Release(3, 0)

	ins := drain(&s)
	if len(ins) != 4 {
		t.Fatalf("got %d frames, want 4", len(ins))
	}
	for i, in := range ins[1:3] {
		if in.Pressed || in.Released {
			t.Errorf("move frame %d has an edge: %+v", i+1, in)
		}
		if !in.Down {
			t.Errorf("move frame %d dropped the button", i+1)
		}
	}
	if !ins[3].Released || ins[3].Down {
		t.Errorf("release frame = %+v", ins[3])
	}
}

func TestScriptDragInterpolates(t *testing.T) {
	var s InputScript
	s.Drag(0, 0, 100, 50, 6)

	ins := drain(&s)
	if len(ins) != 6 {
		t.Fatalf("got %d frames, want 6", len(ins))
	}
	if !ins[0].Pressed {
		t.Error("first frame is not the press")
	}
	if !ins[5].Released {
		t.Error("last frame is not the release")
	}
	assertNear(t, "end x", ins[5].CursorX, 100)
	assertNear(t, "end y", ins[5].CursorY, 50)

	// Moves progress monotonically from start to end.
	prev := 0.0
	for i := 1; i < 5; i++ {
		if ins[i].CursorX <= prev {
			t.Errorf("frame %d x = %v, not increasing", i, ins[i].CursorX)
		}
		prev = ins[i].CursorX
	}
}

func TestScriptDragMinimumFrames(t *testing.T) {
	var s InputScript
	s.Drag(0, 0, 10, 10, 0)
	if got := len(drain(&s)); got != 2 {
		t.Errorf("got %d frames, want 2", got)
	}
}

func TestScriptLeaveKeepsButtonState(t *testing.T) {
	var s InputScript
	s.Press(5, 5)
	s.Leave()
	s.Release(5, 5)

	ins := drain(&s)
	if len(ins) != 3 {
		t.Fatalf("got %d frames, want 3", len(ins))
	}
	leave := ins[1]
	if leave.CursorPresent {
		t.Error("leave frame still has the cursor present")
	}
	if !leave.Down || leave.Pressed || leave.Released {
		t.Errorf("leave frame button state = %+v", leave)
	}
	if !ins[2].Released {
		t.Errorf("release after leave = %+v", ins[2])
	}
}

func TestScriptEmpty(t *testing.T) {
	var s InputScript
	if _, ok := s.Next(); ok {
		t.Error("empty script produced a frame")
	}
}
