package ui

import (
	"strings"
	"testing"

	"photoshare/internal/gallery"
	"photoshare/internal/media"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPanel(p gallery.Photo) *CommentPanel {
	c := NewCommentPanel()
	c.SetSize(40, 30)
	c.SetPhoto(p, true)
	c.SetFocus(paneText)
	return c
}

func TestCommentPanel_SubmitBlankShowsNotice(t *testing.T) {
	c := newTestPanel(photo("a", "cat.png", 0))
	c.Author.SetValue("   ")
	c.Text.SetValue("")

	_, cmd := c.Update(keyMsg("enter"))

	assert.Nil(t, cmd)
	assert.Contains(t, c.Notice, "author is required")
	assert.Contains(t, c.Notice, "comment text is required")
	assert.Contains(t, c.View(), "author is required")
}

func TestCommentPanel_SubmitKeepsInputsOnError(t *testing.T) {
	c := newTestPanel(photo("a", "cat.png", 0))
	c.Author.SetValue("")
	c.Text.SetValue("Cute!")

	_, cmd := c.Update(keyMsg("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Cute!", c.Text.Value())
	assert.NotContains(t, c.Notice, "comment text")
}

func TestCommentPanel_SubmitEmitsTrimmedComment(t *testing.T) {
	c := newTestPanel(photo("a", "cat.png", 0))
	c.Author.SetValue("  Ann ")
	c.Text.SetValue(" Cute! ")

	_, cmd := c.Update(keyMsg("enter"))

	msgs := msgsOf(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, AddCommentMsg{PhotoID: "a", Input: gallery.CommentInput{Author: "Ann", Text: "Cute!"}}, msgs[0])
	assert.Empty(t, c.Text.Value(), "text is cleared after submit")
	assert.Equal(t, "  Ann ", c.Author.Value(), "author is kept")
	assert.Empty(t, c.Notice)
}

func TestCommentPanel_EnterInAuthorMovesToText(t *testing.T) {
	c := newTestPanel(photo("a", "cat.png", 0))
	c.SetFocus(paneAuthor)

	c.Update(keyMsg("enter"))

	assert.Equal(t, paneText, c.Focused())
}

func TestCommentPanel_ClickClose(t *testing.T) {
	c := newTestPanel(photo("a", "cat.png", 0))

	msgs := msgsOf(c.Click(c.Width-1, 0))

	assert.Equal(t, []tea.Msg{ClearSelectionMsg{}}, msgs)
}

func TestCommentPanel_ClickFields(t *testing.T) {
	c := newTestPanel(photo("a", "cat.png", 0))
	formTop := commentHeadLines + c.listHeight()

	c.Click(3, formTop+2)
	assert.Equal(t, paneAuthor, c.Focused())
	c.Click(3, formTop+3)
	assert.Equal(t, paneText, c.Focused())
}

func TestCommentPanel_ListsCommentsInOrder(t *testing.T) {
	p := photo("a", "cat.png", 0)
	p.Comments = []gallery.Comment{
		{ID: "c1", Author: "Ann", Text: "Cute!", Timestamp: testNow},
		{ID: "c2", Author: "Bob", Text: "Agreed", Timestamp: testNow},
	}
	c := newTestPanel(p)

	out := c.View()

	assert.Contains(t, out, "cat.png")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "Cute!")
	assert.Contains(t, out, testNow.Format(gallery.TimestampLayout))
	ann, bob := strings.Index(out, "Ann"), strings.Index(out, "Bob")
	assert.True(t, ann >= 0 && bob > ann, "comments render oldest first")
}

func TestCommentPanel_NoPhoto(t *testing.T) {
	c := NewCommentPanel()
	c.SetSize(40, 20)

	assert.Contains(t, c.View(), "Select a photo")
	_, cmd := c.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Nil(t, c.Click(c.Width-1, 0))
}

func TestCommentPanel_SwitchingPhotoClearsNotice(t *testing.T) {
	c := newTestPanel(photo("a", "cat.png", 0))
	c.Notice = "author is required"

	c.SetPhoto(photo("b", "dog.png", 0), true)

	assert.Empty(t, c.Notice)
}

func TestCommentPanel_SizeMatchesUploadDialog(t *testing.T) {
	p := photo("a", "cat.png", 0)
	p.Size = 1536 * 1024
	c := newTestPanel(p)

	assert.Contains(t, c.View(), media.FormatSize(p.Size))
	assert.Contains(t, c.View(), "1.5 MiB")
}
