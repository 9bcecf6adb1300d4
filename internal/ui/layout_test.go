package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFocusManager_Cycle(t *testing.T) {
	f := NewFocusManager(paneGallery, paneAuthor, paneText)
	if f.Current != paneGallery {
		t.Fatalf("initial focus = %q", f.Current)
	}
	if got := f.Next(); got != paneAuthor {
		t.Errorf("Next = %q, want %q", got, paneAuthor)
	}
	f.Next()
	if got := f.Next(); got != paneGallery {
		t.Errorf("Next should wrap to %q, got %q", paneGallery, got)
	}
	if got := f.Prev(); got != paneText {
		t.Errorf("Prev should wrap to %q, got %q", paneText, got)
	}
}

func TestFocusManager_SetFocusUnknown(t *testing.T) {
	f := NewFocusManager(paneGallery, paneAuthor)
	if f.SetFocus("nowhere") {
		t.Error("SetFocus accepted an unknown pane")
	}
	if !f.Is(paneGallery) {
		t.Errorf("focus changed to %q", f.Current)
	}
	f.Current = "stale"
	if got := f.Next(); got != paneGallery {
		t.Errorf("Next from unknown pane = %q, want first pane", got)
	}
}

func TestMainPanels(t *testing.T) {
	const w, h = 120, 40

	empty := mainPanels(false)
	if len(empty) != 2 {
		t.Fatalf("empty layout has %d panels", len(empty))
	}
	p, r, ok := panelAt(empty, w, h, 60, 20)
	if !ok || p.ID != paneGallery || r.W != w {
		t.Errorf("empty layout: got %q %+v", p.ID, r)
	}

	full := mainPanels(true)
	p, r, ok = panelAt(full, w, h, w-1, headerHeight)
	if !ok || p.ID != paneComments {
		t.Fatalf("right edge should be comments, got %q", p.ID)
	}
	if r.W != commentsWidth(w) || r.X != w-commentsWidth(w) {
		t.Errorf("comments rect %+v", r)
	}
	if p, _, _ := panelAt(full, w, h, 0, 0); p.ID != paneHeader {
		t.Errorf("top-left should be header, got %q", p.ID)
	}
	if _, _, ok := panelAt(full, w, h, w, h); ok {
		t.Error("point outside the screen matched a panel")
	}
}

func TestCommentsWidth(t *testing.T) {
	tests := []struct{ width, want int }{
		{150, 50},
		{90, minCommentsWidth},
		{20, 20},
	}
	for _, tt := range tests {
		if got := commentsWidth(tt.width); got != tt.want {
			t.Errorf("commentsWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestRect_Local(t *testing.T) {
	r := Rect{X: 10, Y: 5, W: 4, H: 2}
	if !r.Contains(13, 6) || r.Contains(14, 6) || r.Contains(10, 7) {
		t.Error("Contains bounds are half-open")
	}
	if x, y := r.Local(12, 6); x != 2 || y != 1 {
		t.Errorf("Local = (%d, %d)", x, y)
	}
}

// stubView records the messages it receives.
type stubView struct {
	name string
	got  []tea.Msg
}

func (s *stubView) Init() tea.Cmd { return nil }
func (s *stubView) Update(msg tea.Msg) (View, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubView) View() string { return s.name }

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	if _, ok := s.UpdateTop(tea.KeyMsg{}); ok {
		t.Error("UpdateTop on empty stack reported an overlay")
	}
	if got := s.Render("base", 10, 3); got != "base" {
		t.Errorf("empty Render = %q", got)
	}

	bottom, top := &stubView{name: "bottom"}, &stubView{name: "top"}
	s.Push(bottom)
	s.Push(top)
	s.UpdateTop(ShowUploadMsg{})
	if len(top.got) != 1 || len(bottom.got) != 0 {
		t.Errorf("only the top overlay receives input: top=%d bottom=%d", len(top.got), len(bottom.got))
	}

	v, ok := s.Pop()
	if !ok || v != View(top) || s.Len() != 1 {
		t.Errorf("Pop = %v %v len=%d", v, ok, s.Len())
	}
}
