package internal

import (
	"testing"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

func TestDoneIconImage(t *testing.T) {
	img, err := DoneIconImage(24, view.BrandColor)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 24 {
		t.Fatalf("bounds = %v", img.Bounds())
	}

	// The checkmark's stroke crosses the point (9, 17) in the 24x24 viewBox.
	painted := false
	for y := 15; y <= 18 && !painted; y++ {
		for x := 7; x <= 11; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Fatalf("checkmark not rasterized")
	}
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Fatalf("corner should be transparent")
	}
}
