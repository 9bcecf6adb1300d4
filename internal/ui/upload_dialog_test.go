package ui

import (
	"testing"

	"photoshare/internal/upload"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDialog(t *testing.T) *UploadDialog {
	d := NewUploadDialog(t.TempDir())
	fakeFiles(d)
	return d
}

// previewOf runs the derive command returned by an intake and returns its
// result, skipping the spinner tick batched with it.
func previewOf(t *testing.T, cmd tea.Cmd) PreviewDerivedMsg {
	t.Helper()
	for _, msg := range msgsOf(cmd) {
		if p, ok := msg.(PreviewDerivedMsg); ok {
			return p
		}
	}
	t.Fatal("no PreviewDerivedMsg")
	return PreviewDerivedMsg{}
}

func TestUploadDialog_DropStagesAndDerives(t *testing.T) {
	d := newTestDialog(t)

	_, cmd := d.Update(DragMsg{Kind: upload.Drop, Path: "/photos/cat.png"})
	require.Equal(t, upload.StatePreviewing, d.Machine.State())
	draft, _ := d.Machine.Draft()
	assert.False(t, draft.Ready())
	assert.Contains(t, d.View(), "Generating preview")

	d.Update(previewOf(t, cmd))

	draft, _ = d.Machine.Draft()
	assert.True(t, draft.Ready())
	assert.Equal(t, "cat.png", draft.File.Name)
	out := d.View()
	assert.Contains(t, out, "cat.png")
	assert.Contains(t, out, "2.0 KiB")
	assert.Contains(t, out, "800x600")
}

func TestUploadDialog_RejectsNonImage(t *testing.T) {
	d := newTestDialog(t)

	_, cmd := d.Update(DragMsg{Kind: upload.Drop, Path: "/notes/todo.txt"})

	assert.Nil(t, cmd)
	assert.Equal(t, upload.StateEmpty, d.Machine.State())
	assert.Contains(t, d.Notice, "todo.txt is not an image")
	assert.Contains(t, d.View(), "not an image")
}

func TestUploadDialog_PasteIsADrop(t *testing.T) {
	d := newTestDialog(t)

	_, cmd := d.Update(pasteMsg(`'/photos/my cat.png'`))

	require.NotNil(t, cmd)
	draft, ok := d.Machine.Draft()
	require.True(t, ok)
	assert.Equal(t, "/photos/my cat.png", draft.File.Path)
	assert.False(t, d.Machine.Active, "a paste is a bare drop")
}

func TestUploadDialog_DragEventsToggleActive(t *testing.T) {
	d := newTestDialog(t)

	d.Update(DragMsg{Kind: upload.DragEnter})
	assert.True(t, d.Machine.Active)
	assert.Contains(t, d.View(), "Release to drop")
	d.Update(DragMsg{Kind: upload.DragOver})
	assert.True(t, d.Machine.Active)
	d.Update(DragMsg{Kind: upload.DragLeave})
	assert.False(t, d.Machine.Active)
	d.Update(DragMsg{Kind: upload.DragEnter})
	d.Update(DragMsg{Kind: upload.Drop})
	assert.False(t, d.Machine.Active)
	assert.Equal(t, upload.StateEmpty, d.Machine.State(), "a drop without a path stages nothing")
}

func TestUploadDialog_StalePreviewIgnored(t *testing.T) {
	d := newTestDialog(t)

	_, first := d.Update(DragMsg{Kind: upload.Drop, Path: "/photos/a.png"})
	stale := previewOf(t, first)
	d.Update(keyMsg("r"))
	require.Equal(t, upload.StateEmpty, d.Machine.State())
	d.Update(DragMsg{Kind: upload.Drop, Path: "/photos/b.png"})

	d.Update(stale)

	draft, ok := d.Machine.Draft()
	require.True(t, ok)
	assert.Equal(t, "b.png", draft.File.Name)
	assert.False(t, draft.Ready(), "a's preview must not attach to b")
}

func TestUploadDialog_PreviewFailureReturnsToEmpty(t *testing.T) {
	d := newTestDialog(t)
	_, cmd := d.Update(DragMsg{Kind: upload.Drop, Path: "/photos/broken.png"})
	res := previewOf(t, cmd)
	res.Preview, res.Err = nil, assert.AnError

	d.Update(res)

	assert.Equal(t, upload.StateEmpty, d.Machine.State())
	assert.Contains(t, d.Notice, "Cannot decode broken.png")
}

func TestUploadDialog_CommitWaitsForPreview(t *testing.T) {
	d := newTestDialog(t)
	_, cmd := d.Update(DragMsg{Kind: upload.Drop, Path: "/photos/cat.png"})

	_, commit := d.Update(keyMsg("enter"))
	assert.Nil(t, commit)
	assert.Equal(t, "Preview is still loading", d.Notice)
	assert.Equal(t, upload.StatePreviewing, d.Machine.State())

	d.Update(previewOf(t, cmd))
	_, commit = d.Update(keyMsg("enter"))

	msgs := msgsOf(commit)
	require.Len(t, msgs, 1)
	up, ok := msgs[0].(UploadPhotoMsg)
	require.True(t, ok)
	assert.Equal(t, "cat.png", up.File.Name)
	assert.NotNil(t, up.Preview)
	assert.Equal(t, upload.StateClosed, d.Machine.State())

	// Closed dialogs ignore everything, so a second upload can't happen.
	_, again := d.Update(keyMsg("enter"))
	assert.Nil(t, again)
}

func TestUploadDialog_EscCancels(t *testing.T) {
	d := newTestDialog(t)
	d.Update(DragMsg{Kind: upload.Drop, Path: "/photos/cat.png"})

	_, cmd := d.Update(keyMsg("esc"))

	assert.Equal(t, []tea.Msg{DismissModalMsg{}}, msgsOf(cmd))
	assert.Equal(t, upload.StateClosed, d.Machine.State())
	_, ok := d.Machine.Draft()
	assert.False(t, ok, "draft is discarded on close")
}

func TestUploadDialog_DropWhilePreviewingKeepsDraft(t *testing.T) {
	d := newTestDialog(t)
	d.Update(DragMsg{Kind: upload.Drop, Path: "/photos/cat.png"})

	_, cmd := d.Update(DragMsg{Kind: upload.Drop, Path: "/photos/dog.png"})

	assert.Nil(t, cmd)
	draft, _ := d.Machine.Draft()
	assert.Equal(t, "cat.png", draft.File.Name)
	assert.NotEmpty(t, d.Notice)
}

func TestUploadDialog_ClickButtons(t *testing.T) {
	d := newTestDialog(t)
	_, cmd := d.Update(DragMsg{Kind: upload.Drop, Path: "/photos/cat.png"})
	d.Update(previewOf(t, cmd))
	buttonRow := lipgloss.Height(d.View()) - dialogChromeY - 1

	msgs := msgsOf(d.Click(dialogChromeX+1, buttonRow))

	require.Len(t, msgs, 1)
	assert.IsType(t, UploadPhotoMsg{}, msgs[0])
}

func TestUploadDialog_ClickCancelAndClose(t *testing.T) {
	d := newTestDialog(t)
	buttonRow := lipgloss.Height(d.View()) - dialogChromeY - 1

	assert.Equal(t, []tea.Msg{DismissModalMsg{}}, msgsOf(d.Click(dialogChromeX, buttonRow)))

	d = newTestDialog(t)
	closeX := dialogChromeX + dialogWidth - 1
	assert.Equal(t, []tea.Msg{DismissModalMsg{}}, msgsOf(d.Click(closeX, dialogChromeY)))
}

func TestUploadDialog_ClickChooseAnother(t *testing.T) {
	d := newTestDialog(t)
	d.Update(DragMsg{Kind: upload.Drop, Path: "/photos/cat.png"})
	buttonRow := lipgloss.Height(d.View()) - dialogChromeY - 1
	x := dialogChromeX + lipgloss.Width(uploadLabel) + buttonSpacing + 1

	assert.Nil(t, d.Click(x, buttonRow))
	assert.Equal(t, upload.StateEmpty, d.Machine.State())
}
