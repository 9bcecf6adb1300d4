package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"photoshare/internal/media"
	"photoshare/internal/ui/textutil"
	"photoshare/internal/upload"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	dialogWidth   = 56 // content width inside the box
	pickerRows    = 8
	previewCols   = 40
	previewRows   = 12
	uploadLabel   = "[ Upload ]"
	discardLabel  = "[ Choose another ]"
	cancelLabel   = "[ Cancel ]"
	dialogChromeX = 3 // border + horizontal padding
	dialogChromeY = 2 // border + vertical padding
	buttonSpacing = 2
)

// UploadDialog is the modal that turns a picked or dropped file into a
// photo. It owns the draft until commit and emits exactly one UploadPhotoMsg,
// or DismissModalMsg when cancelled.
type UploadDialog struct {
	Machine upload.Machine
	Picker  filepicker.Model
	Spinner spinner.Model
	Notice  string // last rejection, shown until the next successful intake

	// Open and Derive are the file-system boundary, replaceable in tests.
	Open   func(path string) (media.File, error)
	Derive func(ctx context.Context, f media.File) (*media.Preview, error)

	ctx         context.Context
	cancel      context.CancelFunc
	renderedSeq uint64
	rendered    string
}

// Ensure UploadDialog implements View.
var _ View = (*UploadDialog)(nil)

// NewUploadDialog creates an empty dialog whose picker starts in dir.
func NewUploadDialog(dir string) *UploadDialog {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AutoHeight = false
	fp.Height = pickerRows
	fp.ShowPermissions = false
	fp.Styles.Selected = Styles.Selected
	fp.Styles.Cursor = Styles.Selected

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles.Pending

	return &UploadDialog{
		Picker:  fp,
		Spinner: sp,
		Open:    media.Open,
		Derive:  media.DerivePreview,
	}
}

// Init implements View.
func (d *UploadDialog) Init() tea.Cmd {
	return d.Picker.Init()
}

// Update implements View.
func (d *UploadDialog) Update(msg tea.Msg) (View, tea.Cmd) {
	if d.Machine.State() == upload.StateClosed {
		return d, nil
	}
	switch msg := msg.(type) {
	case DragMsg:
		return d, d.handleDrag(msg)

	case PreviewDerivedMsg:
		d.handlePreview(msg)
		return d, nil

	case spinner.TickMsg:
		if d.pending() {
			var cmd tea.Cmd
			d.Spinner, cmd = d.Spinner.Update(msg)
			return d, cmd
		}
		return d, nil

	case tea.KeyMsg:
		if msg.Paste {
			return d, d.handleDrag(DragMsg{Kind: upload.Drop, Path: string(msg.Runes)})
		}
		switch msg.String() {
		case "esc", "ctrl+c":
			return d, d.close()
		}
		if d.Machine.State() == upload.StatePreviewing {
			switch msg.String() {
			case "enter", "ctrl+s":
				return d, d.commit()
			case "backspace", "r":
				d.discard()
				return d, nil
			}
			return d, nil
		}
	}

	if d.Machine.State() != upload.StateEmpty {
		return d, nil
	}
	var cmd tea.Cmd
	d.Picker, cmd = d.Picker.Update(msg)
	if ok, path := d.Picker.DidSelectFile(msg); ok {
		return d, tea.Batch(cmd, d.intake(path))
	}
	return d, cmd
}

// handleDrag claims every drag phase. A drop carries a path to stage.
func (d *UploadDialog) handleDrag(msg DragMsg) tea.Cmd {
	if !d.Machine.Drag(msg.Kind) {
		return nil
	}
	if msg.Kind != upload.Drop || strings.TrimSpace(msg.Path) == "" {
		return nil
	}
	if d.Machine.State() != upload.StateEmpty {
		d.Notice = "Discard the staged photo before dropping another"
		return nil
	}
	return d.intake(media.CleanDroppedPath(msg.Path))
}

// intake stages path and starts deriving its preview.
func (d *UploadDialog) intake(path string) tea.Cmd {
	f, err := d.Open(path)
	if err != nil {
		d.Notice = "Cannot read " + textutil.TruncateMiddle(path, 32)
		return nil
	}
	draft, err := d.Machine.Stage(f)
	switch {
	case errors.Is(err, upload.ErrNotImage):
		d.Notice = fmt.Sprintf("%s is not an image (%s)", textutil.TruncateMiddle(f.Name, 24), f.MediaType)
		return nil
	case err != nil:
		d.Notice = err.Error()
		return nil
	}
	d.Notice = ""
	d.resetContext()
	return tea.Batch(d.deriveCmd(d.ctx, draft), d.Spinner.Tick)
}

func (d *UploadDialog) deriveCmd(ctx context.Context, draft upload.Draft) tea.Cmd {
	derive := d.Derive
	return func() tea.Msg {
		p, err := derive(ctx, draft.File)
		return PreviewDerivedMsg{Seq: draft.Seq, Preview: p, Err: err}
	}
}

func (d *UploadDialog) handlePreview(msg PreviewDerivedMsg) {
	if msg.Err != nil {
		draft, _ := d.Machine.Draft()
		if d.Machine.FailPreview(msg.Seq) {
			d.Notice = fmt.Sprintf("Cannot decode %s", textutil.TruncateMiddle(draft.File.Name, 32))
		}
		return
	}
	d.Machine.AttachPreview(msg.Seq, msg.Preview)
}

func (d *UploadDialog) commit() tea.Cmd {
	draft, err := d.Machine.Commit()
	if errors.Is(err, upload.ErrPreviewPending) {
		d.Notice = "Preview is still loading"
		return nil
	}
	if err != nil {
		return nil
	}
	d.stopContext()
	return func() tea.Msg {
		return UploadPhotoMsg{File: draft.File, Preview: draft.Preview}
	}
}

func (d *UploadDialog) discard() {
	d.stopContext()
	d.Machine.Discard()
	d.Notice = ""
}

func (d *UploadDialog) close() tea.Cmd {
	d.stopContext()
	d.Machine.Close()
	return func() tea.Msg { return DismissModalMsg{} }
}

func (d *UploadDialog) resetContext() {
	d.stopContext()
	d.ctx, d.cancel = context.WithCancel(context.Background())
}

func (d *UploadDialog) stopContext() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *UploadDialog) pending() bool {
	draft, ok := d.Machine.Draft()
	return ok && !draft.Ready()
}

// buttons returns the labels on the button row for the current state.
func (d *UploadDialog) buttons() []string {
	if d.Machine.State() == upload.StatePreviewing {
		return []string{uploadLabel, discardLabel, cancelLabel}
	}
	return []string{cancelLabel}
}

// Click handles a left click at dialog-local (x, y), measured from the
// dialog's outer top-left corner.
func (d *UploadDialog) Click(x, y int) tea.Cmd {
	if d.Machine.State() == upload.StateClosed {
		return nil
	}
	if y == dialogChromeY && x >= dialogChromeX+dialogWidth-lipgloss.Width(closeLabel) && x < dialogChromeX+dialogWidth {
		return d.close()
	}
	if y != lipgloss.Height(d.View())-dialogChromeY-1 {
		return nil
	}
	left := dialogChromeX
	for _, label := range d.buttons() {
		w := lipgloss.Width(label)
		if x >= left && x < left+w {
			switch label {
			case uploadLabel:
				return d.commit()
			case discardLabel:
				d.discard()
				return nil
			case cancelLabel:
				return d.close()
			}
		}
		left += w + buttonSpacing
	}
	return nil
}

// View implements View.
func (d *UploadDialog) View() string {
	title := Styles.Title.Render("Upload photo")
	head := title + strings.Repeat(" ", max(1, dialogWidth-lipgloss.Width(title)-lipgloss.Width(closeLabel))) +
		Styles.Hint.Render(closeLabel)

	notice := ""
	if d.Notice != "" {
		notice = Styles.Notice.Render(textutil.Truncate(d.Notice, dialogWidth))
	}

	var body string
	if draft, ok := d.Machine.Draft(); ok {
		body = d.viewDraft(draft)
	} else {
		body = d.viewEmpty()
	}

	labels := d.buttons()
	rendered := make([]string, len(labels))
	for i, l := range labels {
		style := Styles.Hint
		switch {
		case l == uploadLabel && !d.pending():
			style = Styles.Button
		case l == cancelLabel:
			style = Styles.Danger
		}
		rendered[i] = style.Render(l)
	}
	buttons := strings.Join(rendered, strings.Repeat(" ", buttonSpacing))

	content := lipgloss.JoinVertical(lipgloss.Left, head, notice, body, "", buttons)
	return Styles.Box.Width(dialogWidth + 2*(dialogChromeX-1)).Render(content)
}

func (d *UploadDialog) viewEmpty() string {
	zone := Styles.DropZone
	label := "Drag an image onto the terminal to drop it here"
	if d.Machine.Active {
		zone = Styles.DropHover
		label = "Release to drop"
	}
	drop := zone.Width(dialogWidth - 2).Align(lipgloss.Center).Render(Styles.Normal.Render(label))
	return lipgloss.JoinVertical(lipgloss.Left,
		drop,
		Styles.Muted.Render("or choose a file (enter to pick, esc to cancel):"),
		d.Picker.View(),
	)
}

func (d *UploadDialog) viewDraft(draft upload.Draft) string {
	var img string
	if draft.Ready() {
		if d.renderedSeq != draft.Seq || d.rendered == "" {
			d.rendered = draft.Preview.Render(previewCols, previewRows)
			d.renderedSeq = draft.Seq
		}
		img = d.rendered
	} else {
		wait := d.Spinner.View() + " " + Styles.Pending.Render("Generating preview…")
		img = lipgloss.Place(previewCols, previewRows, lipgloss.Center, lipgloss.Center, wait)
	}
	img = lipgloss.PlaceHorizontal(dialogWidth, lipgloss.Center, img)

	info := []string{
		Styles.Author.Render(textutil.TruncateMiddle(draft.File.Name, dialogWidth)),
		Styles.Muted.Render(draft.File.SizeLabel() + " · " + draft.File.MediaType),
	}
	if draft.Ready() {
		info = append(info, Styles.Muted.Render(draft.Preview.Dimensions()+" px"))
		info = append(info, Styles.Hint.Render("enter upload · r choose another · esc cancel"))
	} else {
		info = append(info, "", Styles.Hint.Render("r choose another · esc cancel"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{img, ""}, info...)...)
}
