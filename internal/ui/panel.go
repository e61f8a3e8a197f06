package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	etext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"honnef.co/go/curve"

	"github.com/enumura1/svg-comparison/internal/config"
	"github.com/enumura1/svg-comparison/internal/viewport"
)

// Panel is one half of the comparison: an accent header, a pan/zoom
// viewport over some content, and the footer copy beneath it. The two
// panels are fully independent; each owns its viewport state and its
// animator.
type Panel struct {
	title         string
	accent        color.RGBA
	advantages    []string
	disadvantages []string
	faces         *faces

	vp      *viewport.Viewport
	anim    *viewport.Animator
	content Content
	// Replaced content is disposed one frame later, after Draw has
	// stopped referencing it.
	disposeQueued Content

	bounds    image.Rectangle
	displayed viewport.View
}

// NewPanel builds a panel around content, styled per cfg.
func NewPanel(cfg config.PanelConfig, content Content, f *faces) *Panel {
	vp := viewport.New()
	return &Panel{
		title:         cfg.Title,
		accent:        accentColor(cfg.Accent),
		advantages:    cfg.Advantages,
		disadvantages: cfg.Disadvantages,
		faces:         f,
		vp:            vp,
		anim:          viewport.NewAnimator(vp.View()),
		content:       content,
		displayed:     vp.View(),
	}
}

// SetBounds assigns the panel's outer screen rectangle. The game
// re-layouts every frame, so resizes take effect immediately.
func (p *Panel) SetBounds(r image.Rectangle) {
	p.bounds = r
}

// viewportRect returns the interactive content area: the outer bounds
// minus the header band and the footer.
func (p *Panel) viewportRect() image.Rectangle {
	return image.Rect(
		p.bounds.Min.X,
		p.bounds.Min.Y+headerHeight,
		p.bounds.Max.X,
		p.bounds.Max.Y-p.footerHeight(),
	)
}

// footerHeight is the vertical space for the info line and the
// advantage and disadvantage lists. A panel without disadvantages
// renders no such section and reclaims the space.
func (p *Panel) footerHeight() int {
	lines := 1 + len(p.advantages) + len(p.disadvantages)
	return 2*footerPad + lines*lineHeight
}

// Hit reports whether the screen position lies inside the panel's
// viewport area. Header and footer are chrome; they take no pointer
// input.
func (p *Panel) Hit(x, y int) bool {
	r := p.viewportRect()
	cr := curve.Rect{X0: float64(r.Min.X), Y0: float64(r.Min.Y), X1: float64(r.Max.X), Y1: float64(r.Max.Y)}
	return cr.Contains(curve.Pt(float64(x), float64(y)))
}

// syncAnim carries the viewport state over to the animator: instant
// while a drag is active, eased otherwise.
func (p *Panel) syncAnim() {
	if p.vp.Dragging() {
		p.anim.Jump(p.vp.View())
	} else {
		p.anim.Glide(p.vp.View())
	}
}

// Wheel applies one zoom step to the panel.
func (p *Panel) Wheel(dy float64) {
	p.vp.Wheel(dy)
	p.syncAnim()
}

// PointerDown forwards a button press at pos.
func (p *Panel) PointerDown(btn viewport.Button, pos curve.Point) {
	p.vp.PointerDown(btn, pos)
	p.syncAnim()
}

// PointerMove forwards pointer motion.
func (p *Panel) PointerMove(pos curve.Point) {
	p.vp.PointerMove(pos)
	p.syncAnim()
}

// PointerUp ends an active drag.
func (p *Panel) PointerUp() {
	p.vp.PointerUp()
	p.syncAnim()
}

// PointerLeave ends an active drag because the pointer left the
// viewport area.
func (p *Panel) PointerLeave() {
	p.vp.PointerLeave()
	p.syncAnim()
}

// ResetView eases the panel back to the default pose.
func (p *Panel) ResetView() {
	p.vp.Reset()
	p.syncAnim()
}

// ActualSize eases the panel to 100% scale, leaving the pan alone.
func (p *Panel) ActualSize() {
	p.vp.SetScale(100)
	p.syncAnim()
}

// Dragging reports whether this panel owns an active drag.
func (p *Panel) Dragging() bool {
	return p.vp.Dragging()
}

// View returns the viewport's current pose (the input-state pose, not
// the displayed one).
func (p *Panel) View() viewport.View {
	return p.vp.View()
}

// SetContent swaps the panel's content. The old content keeps serving
// the current frame's Draw and is disposed at the next Update.
func (p *Panel) SetContent(c Content) {
	if p.disposeQueued != nil {
		p.disposeQueued.Dispose()
	}
	p.disposeQueued = p.content
	p.content = c
}

// Content returns the panel's current content.
func (p *Panel) Content() Content {
	return p.content
}

// Update advances the animator and the content by one frame.
func (p *Panel) Update(dt float32) {
	if p.disposeQueued != nil {
		p.disposeQueued.Dispose()
		p.disposeQueued = nil
	}
	p.displayed = p.anim.Update(dt)
	p.content.Update(p.anim.Target())
}

// Draw renders the panel chrome, the content under its displayed pose,
// and the footer copy.
func (p *Panel) Draw(screen *ebiten.Image) {
	b := p.bounds

	// Header band with the centered title.
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), headerHeight, p.accent, false)
	tw, th := etext.Measure(p.title, p.faces.title, 0)
	drawText(screen, p.title, p.faces.title,
		float64(b.Min.X)+(float64(b.Dx())-tw)/2,
		float64(b.Min.Y)+(headerHeight-th)/2,
		colorTitleText)

	// Viewport area: dark backdrop, clipped content, accent border.
	vr := p.viewportRect()
	vector.DrawFilledRect(screen, float32(vr.Min.X), float32(vr.Min.Y), float32(vr.Dx()), float32(vr.Dy()), colorViewportBack, false)
	sub := screen.SubImage(vr).(*ebiten.Image)
	p.content.Draw(sub, p.displayed, vr.Min)
	vector.StrokeRect(screen, float32(vr.Min.X), float32(vr.Min.Y), float32(vr.Dx()), float32(vr.Dy()), borderWidth, p.accent, false)

	// Footer: info line, then the lists.
	x := float64(b.Min.X)
	y := float64(vr.Max.Y) + footerPad
	drawText(screen, p.content.Info(), p.faces.body, x, y, colorInfoText)
	y += lineHeight
	for _, s := range p.advantages {
		drawText(screen, "+ "+s, p.faces.body, x, y, colorAdvantage)
		y += lineHeight
	}
	for _, s := range p.disadvantages {
		drawText(screen, "- "+s, p.faces.body, x, y, colorDisadvantage)
		y += lineHeight
	}
}
