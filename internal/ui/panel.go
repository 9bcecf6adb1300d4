package ui

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Local translates screen coordinates into r's coordinate space.
func (r Rect) Local(x, y int) (int, int) {
	return x - r.X, y - r.Y
}

// BoundsFunc returns the panel's rectangle given terminal dimensions.
type BoundsFunc func(width, height int) Rect

// Panel is a named screen region used for mouse routing.
type Panel struct {
	ID     string
	Bounds BoundsFunc
}

// Panel IDs, also used as focus targets.
const (
	paneHeader   = "header"
	paneGallery  = "gallery"
	paneComments = "comments"
	paneAuthor   = "author"
	paneText     = "text"
)

const (
	headerHeight     = 3
	minCommentsWidth = 36
)

// commentsWidth is the width of the comment sidebar for a terminal width.
func commentsWidth(width int) int {
	w := width / 3
	if w < minCommentsWidth {
		w = minCommentsWidth
	}
	if w > width {
		w = width
	}
	return w
}

// mainPanels lays out the shell. With no photos the gallery spans the full
// width and there is no comment sidebar.
func mainPanels(hasPhotos bool) []Panel {
	panels := []Panel{{
		ID: paneHeader,
		Bounds: func(w, h int) Rect {
			return Rect{X: 0, Y: 0, W: w, H: headerHeight}
		},
	}}
	if !hasPhotos {
		return append(panels, Panel{
			ID: paneGallery,
			Bounds: func(w, h int) Rect {
				return Rect{X: 0, Y: headerHeight, W: w, H: max(0, h-headerHeight)}
			},
		})
	}
	return append(panels,
		Panel{
			ID: paneGallery,
			Bounds: func(w, h int) Rect {
				return Rect{X: 0, Y: headerHeight, W: max(0, w-commentsWidth(w)), H: max(0, h-headerHeight)}
			},
		},
		Panel{
			ID: paneComments,
			Bounds: func(w, h int) Rect {
				cw := commentsWidth(w)
				return Rect{X: w - cw, Y: headerHeight, W: cw, H: max(0, h-headerHeight)}
			},
		},
	)
}

// panelAt returns the panel containing (x, y).
func panelAt(panels []Panel, width, height, x, y int) (Panel, Rect, bool) {
	for _, p := range panels {
		r := p.Bounds(width, height)
		if r.Contains(x, y) {
			return p, r, true
		}
	}
	return Panel{}, Rect{}, false
}
