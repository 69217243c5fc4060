package internal

import (
	"fmt"
	"image"
	"runtime"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow/constants"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

var iconFont *ttf.Font

// RasterizeSVG draws an SVG document into a size x size RGBA image.
func RasterizeSVG(svg string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	return rgba, nil
}

// DoneIconImage returns the checkmark in the given color.
func DoneIconImage(size int, color view.Color) (*image.RGBA, error) {
	return RasterizeSVG(fmt.Sprintf(constants.DoneSVG, color.Hex()), size)
}

// iconTexture returns a texture for spec, drawn from the icon font when one
// is configured and from the built-in SVG otherwise.
func iconTexture(renderer *sdl.Renderer, spec view.IconSpec, pixelSize int32) (*sdl.Texture, error) {
	if iconFont == nil && GetTheme().IconFontPath != "" {
		font, err := ttf.OpenFont(GetTheme().IconFontPath, int(pixelSize))
		if err != nil {
			GetInternalLogger().Warn("Icon font unavailable, using SVG icons", "path", GetTheme().IconFontPath, "error", err)
		} else {
			iconFont = font
		}
	}

	if iconFont != nil {
		surface, err := iconFont.RenderUTF8Blended(spec.Glyph, ToSDL(spec.Color))
		if err == nil {
			defer surface.Free()
			return renderer.CreateTextureFromSurface(surface)
		}
	}

	rgba, err := DoneIconImage(int(pixelSize), spec.Color)
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("icon surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	runtime.KeepAlive(rgba)
	if err != nil {
		return nil, fmt.Errorf("icon texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

func closeIcons() {
	if iconFont != nil {
		iconFont.Close()
		iconFont = nil
	}
}
