package feedback

import "fortio.org/safecast"

// EditorLine converts the directive's 1-based line to the 0-based editor
// convention. The highlighting collaborator receives this value and must not
// be called at all when ok is false.
func EditorLine(d Directive) (line uint32, ok bool) {
	if d.Line <= 0 {
		return 0, false
	}
	n, err := safecast.Conv[uint32](d.Line - 1)
	if err != nil {
		return 0, false
	}
	return n, true
}
