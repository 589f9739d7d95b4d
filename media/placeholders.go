package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"strings"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"
)

const jpegQuality = 85

// Placeholder is one generated stand-in image.
type Placeholder struct {
	Name       string
	Width      int
	Height     int
	Label      string
	Background color.RGBA
}

var white = color.RGBA{0xff, 0xff, 0xff, 0xff}

func hex(v uint32) color.RGBA {
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

// projectPalette cycles over the six project images.
var projectPalette = []color.RGBA{
	hex(0xe74c3c), // red
	hex(0x3498db), // blue
	hex(0x2ecc71), // green
	hex(0xf39c12), // orange
	hex(0x9b59b6), // purple
	hex(0x1abc9c), // teal
}

// Placeholders lists every image the site templates reference.
func Placeholders() []Placeholder {
	out := []Placeholder{
		{Name: "profile.jpg", Width: 400, Height: 400, Label: "Your Photo\nHere", Background: hex(0x4a90e2)},
		{Name: "hero-bg.jpg", Width: 1200, Height: 600, Label: "Hero Background", Background: hex(0x2c3e50)},
	}
	projects := []string{
		"E-Commerce\nWebsite",
		"Task Manager\nApp",
		"Weather\nDashboard",
		"Blog\nPlatform",
		"Portfolio\nWebsite",
		"Chat\nApplication",
	}
	for i, label := range projects {
		out = append(out, Placeholder{
			Name:       fmt.Sprintf("project%d.jpg", i+1),
			Width:      600,
			Height:     400,
			Label:      label,
			Background: projectPalette[i%len(projectPalette)],
		})
	}
	return append(out,
		Placeholder{Name: "about-me.jpg", Width: 500, Height: 600, Label: "About Me\nImage", Background: hex(0x34495e)},
		Placeholder{Name: "favicon.jpg", Width: 64, Height: 64, Label: "Logo", Background: hex(0x2c3e50)},
	)
}

// Render draws p as a solid background with its label centred in white.
func Render(p Placeholder) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(p.Background), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	lines := strings.Split(p.Label, "\n")
	lineHeight := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	textWidth := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > textWidth {
			textWidth = w
		}
	}
	textHeight := lineHeight * len(lines)
	if textWidth == 0 {
		return img
	}

	// Draw at native size, then scale up so labels read like a 24px font.
	label := image.NewRGBA(image.Rect(0, 0, textWidth, textHeight))
	d := &font.Drawer{Dst: label, Src: image.NewUniform(white), Face: face}
	for i, line := range lines {
		w := font.MeasureString(face, line).Ceil()
		d.Dot = fixed.P((textWidth-w)/2, i*lineHeight+ascent)
		d.DrawString(line)
	}

	scale := labelScale(p.Width, p.Height, textWidth, textHeight)
	dst := image.Rect(0, 0, textWidth*scale, textHeight*scale).
		Add(image.Pt((p.Width-textWidth*scale)/2, (p.Height-textHeight*scale)/2))
	draw.NearestNeighbor.Scale(img, dst, label, label.Bounds(), draw.Over, nil)
	return img
}

func labelScale(width, height, textWidth, textHeight int) int {
	scale := 2
	for scale > 1 && (textWidth*scale > width*9/10 || textHeight*scale > height*9/10) {
		scale--
	}
	return scale
}

// Encode writes p as a JPEG.
func Encode(w io.Writer, p Placeholder) error {
	return jpeg.Encode(w, Render(p), &jpeg.Options{Quality: jpegQuality})
}

// GeneratePlaceholders renders every placeholder concurrently and stores it,
// overwriting existing files. Progress lines go to out.
func GeneratePlaceholders(ctx context.Context, store Store, out io.Writer) error {
	var mu sync.Mutex
	report := func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(out, format, args...)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, p := range Placeholders() {
		g.Go(func() error {
			var buf bytes.Buffer
			if err := Encode(&buf, p); err != nil {
				return fmt.Errorf("encode %s: %w", p.Name, err)
			}
			if err := store.Put(ctx, p.Name, &buf); err != nil {
				return fmt.Errorf("store %s: %w", p.Name, err)
			}
			report("Created: %s\n", p.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nAll placeholder images created successfully!")
	fmt.Fprintln(out, "You can replace these with your actual images later.")
	return nil
}
