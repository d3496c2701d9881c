package immi

// InputScript queues synthetic pointer events and replays them as per-frame
// [Input] snapshots, deriving the edge transitions automatically. Useful for
// tests and for feeding recorded interactions through the engine; it mirrors
// what a real backend does when translating host events.
//
//	var script immi.InputScript
//	script.Click(0.5, 0.5)
//	for in, ok := script.Next(); ok; in, ok = script.Next() {
//		engine.Frame(canvas, root, declare(), in)
//	}
type InputScript struct {
	events []scriptEvent
	down   bool // button state after the last queued event
	last   Input
}

type scriptEvent struct {
	x, y    float64
	present bool
	down    bool
}

// Press queues a button-down event at (x, y).
func (s *InputScript) Press(x, y float64) {
	s.down = true
	s.events = append(s.events, scriptEvent{x: x, y: y, present: true, down: true})
}

// Move queues a cursor move to (x, y), keeping the current button state.
func (s *InputScript) Move(x, y float64) {
	s.events = append(s.events, scriptEvent{x: x, y: y, present: true, down: s.down})
}

// Release queues a button-up event at (x, y).
func (s *InputScript) Release(x, y float64) {
	s.down = false
	s.events = append(s.events, scriptEvent{x: x, y: y, present: true, down: false})
}

// Click queues a press followed by a release at the same position.
// Consumes two frames.
func (s *InputScript) Click(x, y float64) {
	s.Press(x, y)
	s.Release(x, y)
}

// Drag queues a full drag: press at (fromX, fromY), linearly interpolated
// moves over frames-2 intermediate frames, and release at (toX, toY).
// Minimum frames is 2 (press + release).
func (s *InputScript) Drag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.Press(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.Move(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.Release(toX, toY)
}

// Leave queues a frame with the cursor absent. The button state carries
// over, so a held press stays held.
func (s *InputScript) Leave() {
	s.events = append(s.events, scriptEvent{down: s.down})
}

// Next pops the next queued event as an Input snapshot. ok is false when the
// script is exhausted.
func (s *InputScript) Next() (in Input, ok bool) {
	if len(s.events) == 0 {
		return Input{}, false
	}
	evt := s.events[0]
	copy(s.events, s.events[1:])
	s.events = s.events[:len(s.events)-1]

	in = Input{
		CursorX:       evt.x,
		CursorY:       evt.y,
		CursorPresent: evt.present,
		Down:          evt.down,
		Pressed:       evt.down && !s.last.Down,
		Released:      !evt.down && s.last.Down,
	}
	s.last = in
	return in, true
}
