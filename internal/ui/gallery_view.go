package ui

import (
	"fmt"
	"strconv"
	"strings"

	"photoshare/internal/gallery"
	"photoshare/internal/media"
	"photoshare/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tile geometry in cells. A tile is a rounded box around a name row, the
// thumbnail and a footer row.
const (
	thumbCols          = 22
	thumbRows          = 6
	tileInnerWidth     = thumbCols
	tileInnerHeight    = 1 + thumbRows + 1
	tileWidth          = tileInnerWidth + 2
	tileHeight         = tileInnerHeight + 2
	tileGap            = 1
	tileStride         = tileWidth + tileGap
	galleryHeaderLines = 2
	deleteLabel        = "[x]"
)

// ThumbnailFunc renders the thumbnail behind a display handle.
type ThumbnailFunc func(url string, cols, rows int) string

// GalleryView renders the photo grid. It never changes the collection; it
// reports intents (SelectPhotoMsg, DeletePhotoMsg) and keeps only cursor,
// hover and scroll state.
type GalleryView struct {
	Photos     []gallery.Photo
	SelectedID string
	Cursor     int
	Hover      int // tile under the mouse, -1 for none
	Offset     int // first visible row
	Focused    bool
	Width      int
	Height     int

	thumbnail ThumbnailFunc
}

// Ensure GalleryView implements View.
var _ View = (*GalleryView)(nil)

// NewGalleryView creates an empty gallery drawing thumbnails with thumb.
func NewGalleryView(thumb ThumbnailFunc) *GalleryView {
	return &GalleryView{Hover: -1, Focused: true, thumbnail: thumb}
}

// SetPhotos replaces the rendered snapshot and keeps the cursor in range.
func (g *GalleryView) SetPhotos(photos []gallery.Photo, selectedID string) {
	g.Photos = photos
	g.SelectedID = selectedID
	if g.Cursor >= len(photos) {
		g.Cursor = max(0, len(photos)-1)
	}
	if g.Hover >= len(photos) {
		g.Hover = -1
	}
	g.ensureVisible()
}

// SetSize sets the area available to the grid.
func (g *GalleryView) SetSize(width, height int) {
	g.Width = width
	g.Height = height
	g.ensureVisible()
}

// Init implements View.
func (g *GalleryView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (g *GalleryView) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(g.Photos) == 0 {
		return g, nil
	}
	cols := g.columns()
	switch key.String() {
	case "left", "h":
		if g.Cursor > 0 {
			g.Cursor--
		}
	case "right", "l":
		if g.Cursor < len(g.Photos)-1 {
			g.Cursor++
		}
	case "up", "k":
		if g.Cursor-cols >= 0 {
			g.Cursor -= cols
		}
	case "down", "j":
		if g.Cursor+cols < len(g.Photos) {
			g.Cursor += cols
		}
	case "home", "g":
		g.Cursor = 0
	case "end", "G":
		g.Cursor = len(g.Photos) - 1
	case "enter":
		return g, selectPhotoCmd(g.Photos[g.Cursor].ID)
	case "x", "d", "delete":
		return g, deletePhotoCmd(g.Photos[g.Cursor].ID)
	}
	g.ensureVisible()
	return g, nil
}

// Click handles a left click at gallery-local (x, y). A click on a tile's
// delete control yields only DeletePhotoMsg; anywhere else on the tile
// yields SelectPhotoMsg.
func (g *GalleryView) Click(x, y int) tea.Cmd {
	i, lx, ly, ok := g.tileAt(x, y)
	if !ok {
		return nil
	}
	id := g.Photos[i].ID
	if deleteRect().Contains(lx, ly) {
		return deletePhotoCmd(id)
	}
	g.Cursor = i
	return selectPhotoCmd(id)
}

// MoveHover updates hover feedback for the pointer at gallery-local (x, y).
func (g *GalleryView) MoveHover(x, y int) {
	if i, _, _, ok := g.tileAt(x, y); ok {
		g.Hover = i
		return
	}
	g.Hover = -1
}

// Scroll moves the visible window by delta rows.
func (g *GalleryView) Scroll(delta int) {
	maxOffset := max(0, g.rowCount()-g.visibleRows())
	g.Offset = min(max(0, g.Offset+delta), maxOffset)
}

// View implements View.
func (g *GalleryView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("Gallery (%d)", len(g.Photos))))
	b.WriteString("\n\n")
	if len(g.Photos) == 0 {
		b.WriteString(Styles.Empty.Render("No photos to show"))
		return b.String()
	}

	cols := g.columns()
	first := g.Offset * cols
	last := min(len(g.Photos), (g.Offset+g.visibleRows())*cols)
	rows := make([]string, 0, g.visibleRows())
	for start := first; start < last; start += cols {
		end := min(start+cols, last)
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			tiles = append(tiles, g.renderTile(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return b.String()
}

func (g *GalleryView) renderTile(i int) string {
	p := g.Photos[i]
	selected := p.ID == g.SelectedID

	nameStyle := Styles.Normal
	if selected {
		nameStyle = Styles.Selected
	}
	nameWidth := tileInnerWidth - lipgloss.Width(deleteLabel) - 1
	name := nameStyle.Render(textutil.PadRightVisual(textutil.TruncateMiddle(p.Name, nameWidth), nameWidth))
	head := name + " " + Styles.Danger.Render(deleteLabel)

	thumb := media.Placeholder(thumbCols, thumbRows)
	if g.thumbnail != nil {
		thumb = g.thumbnail(p.URL, thumbCols, thumbRows)
	}

	count := fmt.Sprintf("%d comments", p.CommentCount())
	if p.CommentCount() == 1 {
		count = "1 comment"
	}
	footer := Styles.Muted.Render(count)
	if selected {
		footer = lipgloss.JoinHorizontal(lipgloss.Top,
			footer,
			strings.Repeat(" ", max(1, tileInnerWidth-lipgloss.Width(count)-lipgloss.Width("● open"))),
			Styles.Selected.Render("● open"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, head, thumb, footer)
	return tileStyle(selected, g.Focused && i == g.Cursor, i == g.Hover).Render(body)
}

// tilePanels lays out the visible tiles in gallery-local coordinates, keyed
// by photo index.
func (g *GalleryView) tilePanels() []Panel {
	cols := g.columns()
	first := g.Offset * cols
	last := min(len(g.Photos), (g.Offset+g.visibleRows())*cols)
	panels := make([]Panel, 0, last-first)
	for i := first; i < last; i++ {
		r := Rect{
			X: ((i - first) % cols) * tileStride,
			Y: galleryHeaderLines + ((i-first)/cols)*tileHeight,
			W: tileWidth,
			H: tileHeight,
		}
		panels = append(panels, Panel{
			ID:     strconv.Itoa(i),
			Bounds: func(int, int) Rect { return r },
		})
	}
	return panels
}

// tileAt returns the photo index under (x, y) and the tile-local position.
func (g *GalleryView) tileAt(x, y int) (idx, lx, ly int, ok bool) {
	p, r, found := panelAt(g.tilePanels(), g.Width, g.Height, x, y)
	if !found {
		return 0, 0, 0, false
	}
	idx, err := strconv.Atoi(p.ID)
	if err != nil || idx >= len(g.Photos) {
		return 0, 0, 0, false
	}
	lx, ly = r.Local(x, y)
	return idx, lx, ly, true
}

// deleteRect is the delete control inside a tile: the last cells of the
// name row, inside the border.
func deleteRect() Rect {
	w := lipgloss.Width(deleteLabel)
	return Rect{X: 1 + tileInnerWidth - w, Y: 1, W: w, H: 1}
}

func (g *GalleryView) columns() int {
	return max(1, g.Width/tileStride)
}

func (g *GalleryView) visibleRows() int {
	return max(1, (g.Height-galleryHeaderLines)/tileHeight)
}

func (g *GalleryView) rowCount() int {
	cols := g.columns()
	return (len(g.Photos) + cols - 1) / cols
}

func (g *GalleryView) ensureVisible() {
	row := g.Cursor / g.columns()
	if row < g.Offset {
		g.Offset = row
	}
	if row >= g.Offset+g.visibleRows() {
		g.Offset = row - g.visibleRows() + 1
	}
	g.Offset = min(g.Offset, max(0, g.rowCount()-g.visibleRows()))
}

func selectPhotoCmd(id string) tea.Cmd {
	return func() tea.Msg { return SelectPhotoMsg{ID: id} }
}

func deletePhotoCmd(id string) tea.Cmd {
	return func() tea.Msg { return DeletePhotoMsg{ID: id} }
}
