package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow/constants"
)

// Fonts opens TTF faces lazily, one per point size.
type Fonts struct {
	path  string
	faces map[int]*ttf.Font
	scale float32
}

var fonts *Fonts

func initFonts(theme Theme) error {
	fonts = &Fonts{
		path:  theme.FontPath,
		faces: make(map[int]*ttf.Font),
		scale: scaleFactor(),
	}
	// Open the two sizes every row needs so a bad font path fails at Init.
	for _, size := range []int{constants.TitleFontSize, constants.SubtitleFontSize} {
		if _, err := fonts.Face(size); err != nil {
			return err
		}
	}
	return nil
}

// GetFonts returns the font set opened by Init.
func GetFonts() *Fonts {
	return fonts
}

// Face returns the face for a logical point size, scaled to the display.
func (f *Fonts) Face(size int) (*ttf.Font, error) {
	if size <= 0 {
		size = constants.TitleFontSize
	}
	if face, ok := f.faces[size]; ok {
		return face, nil
	}

	face, err := ttf.OpenFont(f.path, int(float32(size)*f.scale))
	if err != nil {
		return nil, fmt.Errorf("open font %s at %d: %w", f.path, size, err)
	}
	f.faces[size] = face
	return face, nil
}

// Scale returns the factor applied to logical sizes.
func (f *Fonts) Scale() float32 {
	return f.scale
}

func closeFonts() {
	if fonts == nil {
		return
	}
	for _, face := range fonts.faces {
		face.Close()
	}
	fonts = nil
}

// scaleFactor grows text on high resolution displays; 1.0 at 640px wide.
func scaleFactor() float32 {
	if window == nil {
		return 1
	}
	scale := float32(window.GetWidth()) / 640
	if scale < 1 {
		return 1
	}
	return scale
}
