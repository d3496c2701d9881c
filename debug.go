package immi

import (
	"fmt"
	"strings"
)

// DumpTree returns a readable multi-line description of a resolved layout
// tree: one line per node with its draw-order index, correlation id, and
// root-space rect, indented by depth. Intended for debugging and for
// determinism checks in tests: identical frames produce identical dumps.
func DumpTree(t *Tree) string {
	var b strings.Builder
	if t.Len() > 0 {
		dumpNode(&b, t, 0, 0)
	}
	return b.String()
}

func dumpNode(b *strings.Builder, t *Tree, idx int32, depth int) {
	n := &t.nodes[idx]
	b.WriteString(strings.Repeat("  ", depth))
	id := string(n.ID)
	if id == "" {
		id = "-"
	}
	fmt.Fprintf(b, "[%d] %s (%g,%g %gx%g)\n",
		idx, id, n.Rect.X, n.Rect.Y, n.Rect.Width, n.Rect.Height)
	for c := n.firstChild; c >= 0; c = t.nodes[c].nextSibling {
		dumpNode(b, t, c, depth+1)
	}
}
