package ui

import (
	"photoshare/internal/gallery"
	"photoshare/internal/logging"
	"photoshare/internal/media"
	"photoshare/internal/telemetry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Size used until the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 40
)

// Config carries the collaborators of the root model. Zero values get
// working defaults: a discard logger, a no-op tracer, a fresh registry.
type Config struct {
	StartDir     string // where the upload file picker opens
	Log          logrus.FieldLogger
	Tracer       *telemetry.Tracer
	Media        *media.Registry
	StoreOptions []gallery.Option
}

// AppModel is the root of the view tree. It owns the photo collection and
// the selection (through Store) and is the only place either changes; the
// gallery, comment panel and upload dialog send intents as messages.
type AppModel struct {
	Store      *gallery.Store
	Media      *media.Registry
	Gallery    *GalleryView
	Comments   *CommentPanel
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Focus      *FocusManager
	Tracer     *telemetry.Tracer
	Log        logrus.FieldLogger
	StartDir   string

	Width  int
	Height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		a.layout()
		return a, nil
	case ShowUploadMsg:
		return a, a.showUpload()
	case DismissModalMsg:
		a.closeUpload()
		return a, nil
	case UploadPhotoMsg:
		a.addPhoto(msg)
		return a, nil
	case SelectPhotoMsg:
		a.selectPhoto(msg.ID)
		return a, nil
	case ClearSelectionMsg:
		a.clearSelection()
		return a, nil
	case DeletePhotoMsg:
		a.deletePhoto(msg.ID)
		return a, nil
	case DeleteSelectedMsg:
		if id := a.Store.SelectedID(); id != "" {
			a.deletePhoto(id)
		}
		return a, nil
	case AddCommentMsg:
		a.addComment(msg)
		return a, nil
	case FocusCommentsMsg:
		return a, a.setFocus(paneAuthor)
	case DragMsg:
		return a, a.handleDrag(msg)
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}

	// Async results (previews, spinner ticks, picker reads, cursor blinks).
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	_, cmd := a.Comments.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.render()
}

// mode reports whether a photo is open, for keybind hints.
func (a *AppModel) mode() AppMode {
	if a.Store.SelectedID() != "" {
		return ModePhotoOpen
	}
	return ModeBrowse
}

// NewAppModel creates the root application model with an empty collection.
func NewAppModel(cfg Config) *AppModel {
	if cfg.Log == nil {
		cfg.Log = logging.Discard()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = telemetry.Nop()
	}
	if cfg.Media == nil {
		cfg.Media = media.NewRegistry()
	}
	if cfg.StartDir == "" {
		cfg.StartDir = "."
	}

	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.Bind("SPC q", tea.Quit, "Quit")
	reg.Bind("u", showUploadCmd, "Upload photo")
	reg.Bind("SPC u", showUploadCmd, "Upload photo")
	reg.BindForModes("SPC c", func() tea.Msg { return FocusCommentsMsg{} }, "Comment", ModePhotoOpen)
	reg.BindForModes("SPC x", func() tea.Msg { return DeleteSelectedMsg{} }, "Delete photo", ModePhotoOpen)
	reg.BindForModes("SPC w", func() tea.Msg { return ClearSelectionMsg{} }, "Close photo", ModePhotoOpen)

	a := &AppModel{
		Store:      gallery.NewStore(cfg.Media, cfg.StoreOptions...),
		Media:      cfg.Media,
		Gallery:    NewGalleryView(cfg.Media.Render),
		Comments:   NewCommentPanel(),
		KeyHandler: NewKeyHandler(reg),
		Focus:      NewFocusManager(paneGallery, paneAuthor, paneText),
		Tracer:     cfg.Tracer,
		Log:        cfg.Log,
		StartDir:   cfg.StartDir,
		Width:      defaultWidth,
		Height:     defaultHeight,
	}
	a.layout()
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

func showUploadCmd() tea.Msg {
	return ShowUploadMsg{}
}
