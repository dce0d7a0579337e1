package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/flower-explorer/internal/config"
	"github.com/iburimskiy/flower-explorer/internal/params"
)

// slider is one draggable row. It reads and writes through closures over the
// parameter bindings, so the store stays the only source of values.
type slider struct {
	label  string
	rng    params.Range
	get    func() float64
	set    func(float64)
	tint   color.RGBA
	height int
	track  image.Rectangle
}

// swatch is the title row of a color parameter.
type swatch struct {
	label string
	get   func() params.Color
	y     int
}

// panel is the control panel drawn over the top-right corner. Writes go
// straight to the store; the panel keeps no copy of any value.
type panel struct {
	sliders  []*slider
	swatches []*swatch
	open     bool

	x, y   int
	header image.Rectangle
	body   image.Rectangle

	dragging     *slider
	headerHover  bool
	headerActive bool
}

func newPanel(store *params.Store) *panel {
	p := &panel{open: true}
	for _, b := range params.Scalars() {
		b := b
		p.sliders = append(p.sliders, &slider{
			label:  b.Name,
			rng:    b.Range,
			get:    func() float64 { return b.Get(store) },
			set:    func(v float64) { b.Set(store, v) },
			tint:   accent(0.3),
			height: config.RowHeight,
		})
	}
	for _, b := range params.Colors() {
		b := b
		sw := &swatch{label: b.Name, get: func() params.Color { return b.Get(store) }}
		p.swatches = append(p.swatches, sw)
		for i, name := range []string{"r", "g", "b"} {
			i := i
			p.sliders = append(p.sliders, &slider{
				label: name,
				rng:   params.ChannelRange,
				get:   func() float64 { return float64(b.Get(store)[i]) },
				set: func(v float64) {
					c := b.Get(store)
					c[i] = uint8(v)
					b.Set(store, c)
				},
				tint:   channelTint(i),
				height: config.ChannelRow,
			})
		}
	}
	return p
}

// layout places the panel against the right edge of a screen of the given
// width.
func (p *panel) layout(screenWidth int) {
	p.x = max(screenWidth-config.PanelWidth-config.PanelMargin, 0)
	p.y = config.PanelMargin
	p.header = image.Rect(p.x, p.y, p.x+config.PanelWidth, p.y+config.HeaderHeight)

	left := p.x + config.PanelPadding
	right := p.x + config.PanelWidth - config.PanelPadding
	y := p.header.Max.Y + config.PanelPadding

	scalars := len(params.Scalars())
	for i, s := range p.sliders {
		if i >= scalars && (i-scalars)%3 == 0 {
			p.swatches[(i-scalars)/3].y = y
			y += config.ChannelRow
		}
		if s.height == config.ChannelRow {
			// Channel rows: short label on the left, value on the right.
			mid := y + s.height/2
			s.track = image.Rect(left+2*glyphWidth, mid-config.TrackHeight/2, right-4*glyphWidth, mid+config.TrackHeight/2)
		} else {
			bottom := y + s.height - config.KnobRadius
			s.track = image.Rect(left, bottom-config.TrackHeight, right, bottom)
		}
		y += s.height
	}
	p.body = image.Rect(p.x, p.header.Max.Y, p.x+config.PanelWidth, y+config.PanelPadding)
}

// update handles mouse input for the header button and the sliders.
func (p *panel) update() {
	mx, my := ebiten.CursorPosition()
	cursor := image.Pt(mx, my)

	p.headerHover = cursor.In(p.header)
	if p.headerHover && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.headerActive = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if p.headerActive && p.headerHover {
			p.open = !p.open
		}
		p.headerActive = false
		p.dragging = nil
	}
	if !p.open {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for _, s := range p.sliders {
			if cursor.In(s.hitbox()) {
				p.dragging = s
				break
			}
		}
	}
	if p.dragging != nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		t := p.dragging.track
		frac := float64(mx-t.Min.X) / float64(t.Dx())
		p.dragging.set(p.dragging.rng.Value(frac))
	}
}

// hitbox widens the track vertically so thin tracks are easy to grab.
func (s *slider) hitbox() image.Rectangle {
	return s.track.Inset(-config.KnobRadius)
}

func (p *panel) draw(screen *ebiten.Image) {
	bg := color.RGBA{R: 20, G: 22, B: 28, A: config.PanelAlpha}

	var hc color.RGBA
	switch {
	case p.headerActive:
		hc = accent(0)
	case p.headerHover:
		hc = accent(0.2)
	default:
		hc = color.RGBA{R: 40, G: 44, B: 54, A: 230}
	}
	fillRect(screen, p.header, hc)

	title := "Close Controls"
	if !p.open {
		title = "Open Controls"
	}
	ebitenutil.DebugPrintAt(screen, title, p.header.Min.X+(p.header.Dx()-textWidth(title))/2, p.header.Min.Y+(p.header.Dy()-glyphHeight)/2)
	if !p.open {
		return
	}

	fillRect(screen, p.body, bg)
	border := color.RGBA{R: 70, G: 80, B: 100, A: 255}
	vector.StrokeRect(screen, float32(p.body.Min.X), float32(p.header.Min.Y), float32(p.body.Dx()), float32(p.body.Max.Y-p.header.Min.Y), 1, border, false)

	for _, sw := range p.swatches {
		sw.draw(screen, p.x+config.PanelPadding, p.x+config.PanelWidth-config.PanelPadding)
	}
	for _, s := range p.sliders {
		s.draw(screen, s == p.dragging)
	}
}

func (sw *swatch) draw(screen *ebiten.Image, left, right int) {
	c := sw.get()
	ebitenutil.DebugPrintAt(screen, sw.label, left, sw.y)

	hex := c.Hex()
	box := image.Rect(right-config.SwatchSize, sw.y+1, right, sw.y+1+config.SwatchSize)
	ebitenutil.DebugPrintAt(screen, hex, box.Min.X-textWidth(hex)-4, sw.y)
	fillRect(screen, box, rgba(c))
	vector.StrokeRect(screen, float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()), 1, color.RGBA{R: 200, G: 200, B: 210, A: 255}, false)
}

func (s *slider) draw(screen *ebiten.Image, active bool) {
	v := s.get()
	value := s.rng.Format(v)

	t := s.track
	if s.height == config.ChannelRow {
		ebitenutil.DebugPrintAt(screen, s.label, t.Min.X-2*glyphWidth, t.Min.Y-(glyphHeight-t.Dy())/2)
		ebitenutil.DebugPrintAt(screen, value, t.Max.X+glyphWidth, t.Min.Y-(glyphHeight-t.Dy())/2)
	} else {
		top := t.Min.Y - glyphHeight - 2
		ebitenutil.DebugPrintAt(screen, s.label, t.Min.X, top)
		ebitenutil.DebugPrintAt(screen, value, t.Max.X-textWidth(value), top)
	}

	fillRect(screen, t, color.RGBA{R: 45, G: 50, B: 62, A: 255})
	frac := s.rng.Fraction(v)
	fill := t
	fill.Max.X = t.Min.X + int(frac*float64(t.Dx()))
	fillRect(screen, fill, color.RGBA{R: s.tint.R / 2, G: s.tint.G / 2, B: s.tint.B / 2, A: 255})

	knob := s.tint
	if active {
		knob = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	cx := float32(fill.Max.X)
	cy := float32(t.Min.Y) + float32(t.Dy())/2
	vector.DrawFilledCircle(screen, cx, cy, config.KnobRadius, knob, true)
}

func fillRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}
