package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

// TextPalette picks label colors for a row. Light-weight labels are
// secondary text.
type TextPalette struct {
	Primary   view.Color
	Secondary view.Color
}

// Painter draws laid-out view trees. Layout happens in logical units;
// the painter multiplies by the font scale when drawing.
type Painter struct {
	renderer *sdl.Renderer
	fonts    *Fonts
	cache    *TextureCache
	scale    float32
}

// NewPainter returns a painter for the window opened by Init.
func NewPainter(w *Window) *Painter {
	return &Painter{
		renderer: w.Renderer,
		fonts:    GetFonts(),
		cache:    NewTextureCache(),
		scale:    GetFonts().Scale(),
	}
}

// Scale returns pixels per logical unit.
func (p *Painter) Scale() float32 {
	return p.scale
}

// LogicalSize converts the window size to logical units.
func (p *Painter) LogicalSize(w *Window) (int32, int32) {
	return int32(float32(w.GetWidth()) / p.scale), int32(float32(w.GetHeight()) / p.scale)
}

// MeasureText implements view.Measurer.
func (p *Painter) MeasureText(text string, style view.Style) (int32, int32) {
	face, err := p.fonts.Face(style.FontSize)
	if err != nil {
		GetInternalLogger().Error("Failed to load font", "size", style.FontSize, "error", err)
		return 0, 0
	}
	if text == "" {
		return 0, int32(float32(face.Height()) / p.scale)
	}
	w, h, err := face.SizeUTF8(text)
	if err != nil {
		return 0, int32(float32(face.Height()) / p.scale)
	}
	return int32(float32(w) / p.scale), int32(float32(h) / p.scale)
}

func (p *Painter) toPixels(r view.Rect) sdl.Rect {
	return sdl.Rect{
		X: int32(float32(r.X) * p.scale),
		Y: int32(float32(r.Y) * p.scale),
		W: int32(float32(r.W) * p.scale),
		H: int32(float32(r.H) * p.scale),
	}
}

// FillRect paints a solid rectangle given in logical units.
func (p *Painter) FillRect(r view.Rect, c view.Color) {
	p.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	rect := p.toPixels(r)
	p.renderer.FillRect(&rect)
}

// Paint draws every label and icon box. Containers draw nothing themselves.
func (p *Painter) Paint(boxes []view.Box, palette TextPalette) {
	for _, b := range boxes {
		switch b.Node.Kind {
		case view.KindLabel:
			color := palette.Primary
			if b.Node.Style.FontWeight != view.FontWeightDefault && b.Node.Style.FontWeight < view.FontWeightRegular {
				color = palette.Secondary
			}
			if b.Node.Style.Color != nil {
				color = *b.Node.Style.Color
			}
			p.paintText(b, color)
		case view.KindIcon:
			p.paintIcon(b)
		}
	}
}

// PaintText draws a single run of text at a logical position.
func (p *Painter) PaintText(text string, size int, x, y int32, color view.Color) {
	label := view.Label(text, view.Style{FontSize: size})
	w, h := p.MeasureText(text, label.Style)
	p.paintText(view.Box{Node: label, Rect: view.Rect{X: x, Y: y, W: w, H: h}}, color)
}

func (p *Painter) paintText(b view.Box, color view.Color) {
	if b.Node.Text == "" {
		return
	}

	key := TextKey(b.Node.Text, b.Node.Style.FontSize, color)
	texture := p.cache.Get(key)
	if texture == nil {
		face, err := p.fonts.Face(b.Node.Style.FontSize)
		if err != nil {
			return
		}
		surface, err := face.RenderUTF8Blended(b.Node.Text, ToSDL(color))
		if err != nil {
			GetInternalLogger().Error("Failed to render text", "text", b.Node.Text, "error", err)
			return
		}
		texture, err = p.renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			GetInternalLogger().Error("Failed to create text texture", "error", err)
			return
		}
		p.cache.Set(key, texture)
	}

	_, _, tw, th, err := texture.Query()
	if err != nil {
		return
	}

	dst := p.toPixels(b.Rect)
	// Clip to the box rather than squeezing the glyphs.
	src := sdl.Rect{W: min(tw, dst.W), H: min(th, dst.H)}
	dst.W, dst.H = src.W, src.H
	p.renderer.Copy(texture, &src, &dst)
}

func (p *Painter) paintIcon(b view.Box) {
	spec := *b.Node.Icon
	pixelSize := int32(float32(spec.Size) * p.scale)

	key := IconKey(spec.Glyph, pixelSize, spec.Color)
	texture := p.cache.Get(key)
	if texture == nil {
		var err error
		texture, err = iconTexture(p.renderer, spec, pixelSize)
		if err != nil {
			GetInternalLogger().Error("Failed to draw icon", "glyph", spec.Glyph, "error", err)
			return
		}
		p.cache.Set(key, texture)
	}

	dst := p.toPixels(b.Rect)
	p.renderer.Copy(texture, nil, &dst)
}

// Destroy releases cached textures.
func (p *Painter) Destroy() {
	GetInternalLogger().Debug("Releasing cached textures", "count", p.cache.Len())
	p.cache.Destroy()
}
