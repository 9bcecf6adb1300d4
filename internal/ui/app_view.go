package ui

import (
	"strings"

	"photoshare/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

const uploadButtonLabel = "[ Upload photo ]"

func (a *AppModel) render() string {
	header := a.renderHeader()

	var main string
	if a.Store.Len() == 0 {
		main = a.renderEmpty()
	} else {
		var gallery, comments Rect
		for _, p := range mainPanels(true) {
			switch p.ID {
			case paneGallery:
				gallery = p.Bounds(a.Width, a.Height)
			case paneComments:
				comments = p.Bounds(a.Width, a.Height)
			}
		}
		left := lipgloss.NewStyle().
			Width(gallery.W).
			Height(gallery.H).
			MaxHeight(gallery.H).
			Render(a.Gallery.View())
		right := lipgloss.NewStyle().
			Height(comments.H).
			MaxHeight(comments.H).
			Render(a.Comments.View())
		main = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	base := lipgloss.JoinVertical(lipgloss.Left, header, main)
	base = a.Overlays.Render(base, a.Width, a.Height)
	if help := RenderKeybindHelp(a.KeyHandler, a.mode()); help != "" {
		base += "\n" + help
	}
	return base
}

func (a *AppModel) renderHeader() string {
	title := Styles.Title.Render("photoshare")
	button := Styles.Button.Render(uploadButtonLabel)
	gap := max(1, a.Width-lipgloss.Width(title)-lipgloss.Width(button))
	top := title + strings.Repeat(" ", gap) + button

	hint := "u upload · enter select · x delete · tab comment · SPC commands · q quit"
	if !a.Focus.Is(paneGallery) {
		hint = "enter next/submit · alt+enter newline · tab switch field · esc back to gallery"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		Styles.Hint.Render(textutil.Truncate(hint, a.Width)),
		Styles.Muted.Render(strings.Repeat("─", max(0, a.Width))),
	)
}

func (a *AppModel) renderEmpty() string {
	box := lipgloss.JoinVertical(lipgloss.Center,
		Styles.Title.Render("No photos"),
		Styles.Muted.Render("Start by uploading your first photo"),
		"",
		Styles.Button.Render(uploadButtonLabel),
	)
	return lipgloss.Place(a.Width, max(0, a.Height-headerHeight), lipgloss.Center, lipgloss.Center, box)
}

// uploadButtonRect is the header button in screen coordinates.
func (a *AppModel) uploadButtonRect() Rect {
	w := lipgloss.Width(uploadButtonLabel)
	return Rect{X: max(0, a.Width-w), Y: 0, W: w, H: 1}
}

// overlayRect is where the overlay stack draws v: centered on screen.
func (a *AppModel) overlayRect(v View) Rect {
	s := v.View()
	w, h := lipgloss.Width(s), lipgloss.Height(s)
	return Rect{X: max(0, a.Width-w) / 2, Y: max(0, a.Height-h) / 2, W: w, H: h}
}
