package ui

import (
	"cmp"
	"context"
	"strings"

	"photoshare/internal/upload"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// addPhoto stores a committed upload and closes the dialog.
func (a *AppModel) addPhoto(msg UploadPhotoMsg) {
	_, span := a.Tracer.Start(context.Background(), "photo.add", map[string]string{
		"name":       msg.File.Name,
		"media_type": msg.File.MediaType,
	})
	defer span.End()

	p := a.Store.AddPhoto(msg.File, msg.Preview)
	a.Log.WithFields(logrus.Fields{
		"photo": p.ID,
		"name":  p.Name,
		"size":  p.Size,
		"url":   p.URL,
	}).Info("photo added")

	a.closeUpload()
	a.Gallery.Cursor = 0
	a.sync()
}

// addComment appends a comment. Unknown photos and blank fields are dropped
// without touching the collection.
func (a *AppModel) addComment(msg AddCommentMsg) {
	_, span := a.Tracer.Start(context.Background(), "comment.add", map[string]string{
		"photo": msg.PhotoID,
	})
	defer span.End()

	c, err := a.Store.AddComment(msg.PhotoID, msg.Input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.Log.WithError(err).WithField("photo", msg.PhotoID).Debug("comment dropped")
		return
	}
	a.Log.WithFields(logrus.Fields{
		"photo":   msg.PhotoID,
		"comment": c.ID,
		"author":  c.Author,
	}).Info("comment added")
	a.sync()
}

// deletePhoto removes a photo and releases its display handle. Deleting a
// photo that is already gone is a no-op.
func (a *AppModel) deletePhoto(id string) {
	_, span := a.Tracer.Start(context.Background(), "photo.delete", map[string]string{
		"photo": id,
	})
	defer span.End()

	if !a.Store.DeletePhoto(id) {
		a.Log.WithField("photo", id).Debug("delete of unknown photo ignored")
		return
	}
	a.Log.WithField("photo", id).Info("photo deleted")
	a.sync()
}

func (a *AppModel) selectPhoto(id string) {
	if !a.Store.Select(id) {
		a.Log.WithField("photo", id).Debug("select of unknown photo ignored")
		return
	}
	a.Log.WithField("photo", id).Debug("photo selected")
	a.sync()
}

func (a *AppModel) clearSelection() {
	a.Store.ClearSelection()
	a.sync()
}

// showUpload opens the upload dialog unless it is already open.
func (a *AppModel) showUpload() tea.Cmd {
	if _, ok := a.uploadDialog(); ok {
		return nil
	}
	d := NewUploadDialog(a.StartDir)
	a.Overlays.Push(d)
	a.KeyHandler.reset()
	return d.Init()
}

// closeUpload pops the dialog; its draft goes with it.
func (a *AppModel) closeUpload() {
	if d, ok := a.uploadDialog(); ok {
		d.Machine.Close()
		a.Overlays.Pop()
	}
}

func (a *AppModel) uploadDialog() (*UploadDialog, bool) {
	top, ok := a.Overlays.Peek()
	if !ok {
		return nil, false
	}
	d, ok := top.(*UploadDialog)
	return d, ok
}

// sync pushes the current store snapshot down to the views.
func (a *AppModel) sync() {
	a.Gallery.SetPhotos(a.Store.Photos(), a.Store.SelectedID())
	p, ok := a.Store.Selected()
	a.Comments.SetPhoto(p, ok)
	if !ok && !a.Focus.Is(paneGallery) {
		a.setFocus(paneGallery)
	}
	a.layout()
}

// layout sizes the views for the current terminal.
func (a *AppModel) layout() {
	hasPhotos := a.Store.Len() > 0
	for _, p := range mainPanels(hasPhotos) {
		r := p.Bounds(a.Width, a.Height)
		switch p.ID {
		case paneGallery:
			a.Gallery.SetSize(r.W, r.H)
		case paneComments:
			a.Comments.SetSize(r.W, r.H)
		}
	}
}

// setFocus moves keyboard focus. The comment form only takes focus while a
// photo is open.
func (a *AppModel) setFocus(pane string) tea.Cmd {
	if pane != paneGallery && a.Store.SelectedID() == "" {
		pane = paneGallery
	}
	a.Focus.SetFocus(pane)
	a.Gallery.Focused = pane == paneGallery
	if pane == paneGallery {
		return a.Comments.SetFocus("")
	}
	return a.Comments.SetFocus(pane)
}

// syncFocusFromComments follows focus changes the comment panel made itself
// (enter in the name field, clicks on the form).
func (a *AppModel) syncFocusFromComments() {
	pane := cmp.Or(a.Comments.Focused(), paneGallery)
	a.Focus.SetFocus(pane)
	a.Gallery.Focused = pane == paneGallery
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if _, ok := a.Overlays.Peek(); ok {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	if !a.Focus.Is(paneGallery) {
		switch msg.String() {
		case "ctrl+c":
			return tea.Quit
		case "esc":
			return a.setFocus(paneGallery)
		case "tab", "shift+tab":
			return a.cycleFocus(msg.String() == "shift+tab")
		}
		_, cmd := a.Comments.Update(msg)
		a.syncFocusFromComments()
		return cmd
	}

	// A path pasted into the gallery is a drop onto the window.
	if msg.Paste {
		return a.handleDrag(DragMsg{Kind: upload.Drop, Path: string(msg.Runes)})
	}

	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}

	switch msg.String() {
	case "tab", "shift+tab":
		return a.cycleFocus(msg.String() == "shift+tab")
	case "esc":
		if a.Store.SelectedID() != "" {
			a.clearSelection()
		}
		return nil
	case "pgup", "pgdown":
		a.Comments.Update(msg)
		return nil
	}
	_, cmd := a.Gallery.Update(msg)
	return cmd
}

func (a *AppModel) cycleFocus(back bool) tea.Cmd {
	if a.Store.SelectedID() == "" {
		return nil
	}
	if back {
		return a.setFocus(a.Focus.Prev())
	}
	return a.setFocus(a.Focus.Next())
}

// handleDrag routes drag gestures to the upload dialog. A drop with no dialog
// open opens one and stages the dropped file in it.
func (a *AppModel) handleDrag(msg DragMsg) tea.Cmd {
	var open tea.Cmd
	if _, ok := a.uploadDialog(); !ok {
		if msg.Kind != upload.Drop || strings.TrimSpace(msg.Path) == "" {
			return nil
		}
		open = a.showUpload()
	}
	cmd, _ := a.Overlays.UpdateTop(msg)
	return tea.Batch(open, cmd)
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if top, ok := a.Overlays.Peek(); ok {
		d, isDialog := top.(*UploadDialog)
		if !isDialog || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		r := a.overlayRect(d)
		if !r.Contains(msg.X, msg.Y) {
			return nil
		}
		return d.Click(r.Local(msg.X, msg.Y))
	}

	panel, r, ok := panelAt(mainPanels(a.Store.Len() > 0), a.Width, a.Height, msg.X, msg.Y)
	if !ok {
		return nil
	}
	lx, ly := r.Local(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if panel.ID == paneGallery {
			a.Gallery.MoveHover(lx, ly)
		} else {
			a.Gallery.Hover = -1
		}
		return nil
	case tea.MouseActionPress:
	default:
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if panel.ID == paneGallery {
			a.Gallery.Scroll(-1)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if panel.ID == paneGallery {
			a.Gallery.Scroll(1)
		}
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	switch panel.ID {
	case paneHeader:
		if a.uploadButtonRect().Contains(msg.X, msg.Y) {
			return showUploadCmd
		}
	case paneGallery:
		if a.Store.Len() == 0 {
			return showUploadCmd
		}
		focus := a.setFocus(paneGallery)
		return tea.Batch(focus, a.Gallery.Click(lx, ly))
	case paneComments:
		cmd := a.Comments.Click(lx, ly)
		a.syncFocusFromComments()
		return cmd
	}
	return nil
}
