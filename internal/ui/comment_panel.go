package ui

import (
	"strings"

	"photoshare/internal/gallery"
	"photoshare/internal/media"
	"photoshare/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	commentTextRows  = 3
	commentHeadLines = 3 // title, photo info, blank
	// separator, notice, author, text rows, button
	commentFormLines = 1 + 1 + 1 + commentTextRows + 1
	closeLabel       = "[x]"
	submitLabel      = "[ Add comment ]"
	sidebarChrome    = 2 // left border + padding
)

// CommentPanel shows the selected photo's comments and the form to add one.
// Submitting emits AddCommentMsg; the panel itself never mutates a photo.
type CommentPanel struct {
	Photo  gallery.Photo
	Open   bool // a photo is selected
	Author textinput.Model
	Text   textarea.Model
	List   viewport.Model
	Notice string // validation problems from the last submit
	Width  int
	Height int

	focus string // paneAuthor, paneText or ""
}

// Ensure CommentPanel implements View.
var _ View = (*CommentPanel)(nil)

// NewCommentPanel creates a panel with no photo open.
func NewCommentPanel() *CommentPanel {
	author := textinput.New()
	author.Placeholder = "Your name"
	author.Prompt = "Name: "
	author.CharLimit = 64

	text := textarea.New()
	text.Placeholder = "Your comment..."
	text.ShowLineNumbers = false
	text.CharLimit = 1000
	text.SetHeight(commentTextRows)
	text.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")

	return &CommentPanel{
		Author: author,
		Text:   text,
		List:   viewport.New(0, 0),
	}
}

// SetPhoto shows p, or the "select a photo" hint when open is false.
func (c *CommentPanel) SetPhoto(p gallery.Photo, open bool) {
	switched := !open || p.ID != c.Photo.ID
	grew := p.CommentCount() > c.Photo.CommentCount()
	c.Photo = p
	c.Open = open
	if switched {
		c.Notice = ""
	}
	c.refreshList()
	if switched || grew {
		c.List.GotoBottom()
	}
}

// SetSize sets the outer size, including the sidebar border.
func (c *CommentPanel) SetSize(width, height int) {
	c.Width = width
	c.Height = height
	inner := c.innerWidth()
	c.Author.Width = max(1, inner-lipgloss.Width(c.Author.Prompt)-1)
	c.Text.SetWidth(inner)
	c.List.Width = inner
	c.List.Height = c.listHeight()
	c.refreshList()
}

// SetFocus moves keyboard focus to pane (paneAuthor, paneText) or removes it
// from the form when pane is "".
func (c *CommentPanel) SetFocus(pane string) tea.Cmd {
	c.focus = pane
	c.Author.Blur()
	c.Text.Blur()
	switch pane {
	case paneAuthor:
		return c.Author.Focus()
	case paneText:
		return c.Text.Focus()
	}
	return nil
}

// Focused returns the focused form field or "".
func (c *CommentPanel) Focused() string {
	return c.focus
}

// Init implements View.
func (c *CommentPanel) Init() tea.Cmd {
	return nil
}

// Update implements View. Keys reach the panel only while a form field has
// focus; tab between fields is handled by the app's FocusManager.
func (c *CommentPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	if !c.Open {
		return c, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if c.focus == paneAuthor {
				return c, c.SetFocus(paneText)
			}
			return c, c.submit()
		case "pgup":
			c.List.PageUp()
			return c, nil
		case "pgdown":
			c.List.PageDown()
			return c, nil
		}
	}

	var cmd tea.Cmd
	switch c.focus {
	case paneAuthor:
		c.Author, cmd = c.Author.Update(msg)
	case paneText:
		c.Text, cmd = c.Text.Update(msg)
	}
	return c, cmd
}

// submit validates the form. On success the text field is cleared and the
// author kept for the next comment.
func (c *CommentPanel) submit() tea.Cmd {
	in, err := gallery.ValidateComment(c.Author.Value(), c.Text.Value())
	if err != nil {
		c.Notice = strings.ReplaceAll(err.Error(), "\n", "; ")
		return nil
	}
	c.Notice = ""
	c.Text.Reset()
	id := c.Photo.ID
	return func() tea.Msg {
		return AddCommentMsg{PhotoID: id, Input: in}
	}
}

// Click handles a left click at panel-local (x, y).
func (c *CommentPanel) Click(x, y int) tea.Cmd {
	if !c.Open {
		return nil
	}
	if y == 0 && x >= c.Width-lipgloss.Width(closeLabel) {
		return func() tea.Msg { return ClearSelectionMsg{} }
	}
	formTop := commentHeadLines + c.listHeight()
	switch row := y - formTop; {
	case row == 2:
		return c.SetFocus(paneAuthor)
	case row >= 3 && row < 3+commentTextRows:
		return c.SetFocus(paneText)
	case row == 3+commentTextRows:
		return c.submit()
	}
	return nil
}

// View implements View.
func (c *CommentPanel) View() string {
	inner := c.innerWidth()
	if !c.Open {
		body := lipgloss.JoinVertical(lipgloss.Left,
			Styles.Title.Render("Comments"),
			"",
			Styles.Empty.Render(strings.Join(textutil.Wrap("Select a photo to see its comments", inner), "\n")),
		)
		return Styles.Sidebar.Height(max(0, c.Height)).Render(body)
	}

	title := Styles.Title.Render("Comments")
	gap := max(1, inner-lipgloss.Width(title)-lipgloss.Width(closeLabel))
	head := title + strings.Repeat(" ", gap) + Styles.Hint.Render(closeLabel)
	info := Styles.Muted.Render(textutil.Truncate(c.Photo.Name+" · "+media.FormatSize(c.Photo.Size), inner))

	notice := ""
	if c.Notice != "" {
		notice = Styles.Notice.Render(textutil.Truncate(c.Notice, inner))
	}
	button := Styles.Hint.Render(submitLabel)
	if c.focus != "" {
		button = Styles.Button.Render(submitLabel)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		head,
		info,
		"",
		c.List.View(),
		Styles.Muted.Render(strings.Repeat("─", inner)),
		notice,
		c.Author.View(),
		c.Text.View(),
		button,
	)
	return Styles.Sidebar.Render(body)
}

func (c *CommentPanel) refreshList() {
	if !c.Open {
		c.List.SetContent("")
		return
	}
	inner := c.innerWidth()
	if len(c.Photo.Comments) == 0 {
		c.List.SetContent(Styles.Empty.Render("No comments yet"))
		return
	}
	blocks := make([]string, 0, len(c.Photo.Comments))
	for _, cm := range c.Photo.Comments {
		ts := cm.FormatTimestamp()
		author := Styles.Author.Render(textutil.Truncate(cm.Author, max(1, inner-len(ts)-1)))
		gap := max(1, inner-lipgloss.Width(author)-len(ts))
		lines := []string{author + strings.Repeat(" ", gap) + Styles.Muted.Render(ts)}
		for _, l := range textutil.Wrap(cm.Text, inner) {
			lines = append(lines, Styles.Normal.Render(l))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	c.List.SetContent(strings.Join(blocks, "\n\n"))
}

func (c *CommentPanel) innerWidth() int {
	return max(1, c.Width-sidebarChrome)
}

func (c *CommentPanel) listHeight() int {
	return max(1, c.Height-commentHeadLines-commentFormLines)
}

