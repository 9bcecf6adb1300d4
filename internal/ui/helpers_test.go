package ui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"photoshare/internal/gallery"
	"photoshare/internal/media"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 9, 14, 30, 0, 0, time.Local)

// newTestApp builds an app with predictable ids ("id-1", "id-2", ...) and a
// fixed clock, sized 100x40.
func newTestApp(t *testing.T) (*AppModel, tea.Model) {
	t.Helper()
	n := 0
	a := NewAppModel(Config{
		StartDir: t.TempDir(),
		StoreOptions: []gallery.Option{
			gallery.WithIDFunc(func() string { n++; return fmt.Sprintf("id-%d", n) }),
			gallery.WithClock(func() time.Time { return testNow }),
		},
	})
	return a, a.AsTeaModel()
}

// pump runs cmd and feeds every resulting message back into m until no
// commands remain. Spinner ticks are dropped so animations don't loop.
func pump(t *testing.T, m tea.Model, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 100, "command loop did not settle")
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		switch msg := msg.(type) {
		case nil:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		case spinner.TickMsg:
			continue
		}
		seen = append(seen, msg)
		_, next := m.Update(msg)
		queue = append(queue, next)
	}
	return seen
}

// msgsOf runs cmd without feeding anything back.
func msgsOf(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, msgsOf(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: 120, B: uint8(y * 255 / h), A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func writeText(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("just some notes\n"), 0o644))
	return path
}

// fakeFiles replaces the dialog's file-system boundary. Files ending in .txt
// are text, everything else is a PNG.
func fakeFiles(d *UploadDialog) {
	d.Open = func(path string) (media.File, error) {
		mt := "image/png"
		if strings.HasSuffix(path, ".txt") {
			mt = "text/plain; charset=utf-8"
		}
		return media.File{Path: path, Name: filepath.Base(path), Size: 2048, MediaType: mt}, nil
	}
	d.Derive = func(ctx context.Context, f media.File) (*media.Preview, error) {
		return &media.Preview{Image: image.NewRGBA(image.Rect(0, 0, 8, 6)), Width: 800, Height: 600}, nil
	}
}

func photo(id, name string, comments int) gallery.Photo {
	p := gallery.Photo{ID: id, URL: media.HandlePrefix + id, Name: name, MediaType: "image/png"}
	for i := range comments {
		p.Comments = append(p.Comments, gallery.Comment{
			ID:        fmt.Sprintf("%s-c%d", id, i),
			Author:    "Ann",
			Text:      "nice",
			Timestamp: testNow,
		})
	}
	return p
}
