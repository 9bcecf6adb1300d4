package ui

// FocusManager tracks which pane receives keyboard input and rotates it in a
// fixed order.
type FocusManager struct {
	Current string   // focused pane ID
	Order   []string // rotation order
}

// NewFocusManager focuses the first pane of order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next moves focus to the following pane, wrapping around.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the preceding pane, wrapping around.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 {
		f.Current = f.Order[0]
		return f.Current
	}
	f.Current = f.Order[((idx+delta)%n+n)%n]
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in the order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.Current = id
	return true
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
