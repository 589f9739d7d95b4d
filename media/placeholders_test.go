package media

import (
	"bytes"
	"context"
	"image/jpeg"
	"strings"
	"testing"
)

func TestPlaceholders_Catalogue(t *testing.T) {
	want := map[string][2]int{
		"profile.jpg":  {400, 400},
		"hero-bg.jpg":  {1200, 600},
		"project1.jpg": {600, 400},
		"project6.jpg": {600, 400},
		"about-me.jpg": {500, 600},
		"favicon.jpg":  {64, 64},
	}

	all := Placeholders()
	if len(all) != 10 {
		t.Fatalf("Placeholders() returned %d images, want 10", len(all))
	}
	for _, p := range all {
		if size, ok := want[p.Name]; ok && (p.Width != size[0] || p.Height != size[1]) {
			t.Errorf("%s is %dx%d, want %dx%d", p.Name, p.Width, p.Height, size[0], size[1])
		}
	}
}

func TestRender_BackgroundAndLabel(t *testing.T) {
	for _, p := range Placeholders() {
		img := Render(p)
		if b := img.Bounds(); b.Dx() != p.Width || b.Dy() != p.Height {
			t.Fatalf("%s rendered at %v", p.Name, b)
		}
		if got := img.RGBAAt(0, 0); got != p.Background {
			t.Errorf("%s corner = %v, want background %v", p.Name, got, p.Background)
		}

		hasLabel := false
		for y := 0; y < p.Height && !hasLabel; y++ {
			for x := 0; x < p.Width; x++ {
				if img.RGBAAt(x, y) == white {
					hasLabel = true
					break
				}
			}
		}
		if !hasLabel {
			t.Errorf("%s has no label pixels", p.Name)
		}
	}
}

func TestGeneratePlaceholders(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())
	var out bytes.Buffer

	if err := GeneratePlaceholders(ctx, store, &out); err != nil {
		t.Fatalf("GeneratePlaceholders() error = %v", err)
	}

	for _, p := range Placeholders() {
		if !strings.Contains(out.String(), "Created: "+p.Name) {
			t.Errorf("output missing %s", p.Name)
		}

		rc, err := store.Open(ctx, p.Name)
		if err != nil {
			t.Fatalf("Open(%s) error = %v", p.Name, err)
		}
		cfg, err := jpeg.DecodeConfig(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("%s is not a JPEG: %v", p.Name, err)
		}
		if cfg.Width != p.Width || cfg.Height != p.Height {
			t.Errorf("%s decoded as %dx%d", p.Name, cfg.Width, cfg.Height)
		}
	}
	if !strings.Contains(out.String(), "All placeholder images created successfully!") {
		t.Errorf("missing summary line:\n%s", out.String())
	}
}
