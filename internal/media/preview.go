package media

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfnt/resize"
)

// MaxPreviewEdge bounds the longest edge of a decoded preview, in pixels.
const MaxPreviewEdge = 160

// Preview is the displayable form of an image file: a downscaled copy of the
// decoded pixels plus the source dimensions.
type Preview struct {
	Image  image.Image
	Width  int // source width in pixels
	Height int // source height in pixels
}

// DerivePreview decodes f and scales it to fit MaxPreviewEdge.
// It is slow relative to user input and is meant to run inside a tea.Cmd.
func DerivePreview(ctx context.Context, f File) (*Preview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("media.DerivePreview: %w", err)
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("media.DerivePreview %s: decode: %w", f.Name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Preview{
		Image:  resize.Thumbnail(MaxPreviewEdge, MaxPreviewEdge, img, resize.Lanczos3),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// Dimensions returns "WxH" of the source image.
func (p *Preview) Dimensions() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// Render draws the preview into a cols x rows cell block using upper half
// blocks, two pixel rows per cell. Aspect ratio is kept; the remainder is
// padded with spaces so every line is exactly cols wide.
func (p *Preview) Render(cols, rows int) string {
	if p == nil || p.Image == nil || cols <= 0 || rows <= 0 {
		return Placeholder(cols, rows)
	}
	img := resize.Thumbnail(uint(cols), uint(rows*2), p.Image, resize.Bilinear)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	padLeft := (cols - w) / 2
	usedRows := (h + 1) / 2
	padTop := (rows - usedRows) / 2

	blank := strings.Repeat(" ", cols)
	lines := make([]string, 0, rows)
	for i := 0; i < padTop; i++ {
		lines = append(lines, blank)
	}
	for y := 0; y < h; y += 2 {
		var line strings.Builder
		line.WriteString(strings.Repeat(" ", padLeft))
		for x := 0; x < w; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img.At(b.Min.X+x, b.Min.Y+y)))
			if y+1 < h {
				style = style.Background(hexColor(img.At(b.Min.X+x, b.Min.Y+y+1)))
			}
			line.WriteString(style.Render("▀"))
		}
		line.WriteString(strings.Repeat(" ", cols-w-padLeft))
		lines = append(lines, line.String())
	}
	for len(lines) < rows {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

// Placeholder is drawn where no preview is available yet.
func Placeholder(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat("░", cols)
	}
	return strings.Join(lines, "\n")
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
