package upload

// DragKind is the phase of a drag gesture over the drop zone.
// Terminals report only Drop (a pasted path); the other phases come from
// hosts that track the pointer.
type DragKind int

const (
	DragEnter DragKind = iota
	DragOver
	DragLeave
	Drop
)

func (k DragKind) String() string {
	switch k {
	case DragEnter:
		return "enter"
	case DragOver:
		return "over"
	case DragLeave:
		return "leave"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// Drag updates the drop zone highlight for a drag event and reports whether
// the event belongs to the dialog. Every drag phase is claimed while the
// dialog is open so nothing underneath reacts to it.
func (m *Machine) Drag(kind DragKind) bool {
	if m.state == StateClosed {
		return false
	}
	switch kind {
	case DragEnter, DragOver:
		m.Active = true
	case DragLeave, Drop:
		m.Active = false
	}
	return true
}
