package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/folio/config"
	"github.com/milk9111/folio/contact"
	"github.com/milk9111/folio/content"
	"github.com/milk9111/folio/event"
	"github.com/milk9111/folio/loop"
	"github.com/milk9111/folio/render"
	"github.com/milk9111/folio/shell"
	"github.com/milk9111/folio/theme"
	"golang.org/x/image/font/gofont/goregular"
)

type Game struct {
	cfg     *config.Config
	cfgPath string

	bus    *event.Bus
	canvas *render.Canvas
	motion *shell.Motion

	themes *theme.Store
	theme  *shell.ThemeState

	page    *page
	toasts  []*contact.Notification
	modal   *ebitenui.UI
	project string
	watcher *config.Watcher
	subs    []*event.Subscription

	width, height float64
	input         hostInput
	navHits       []navHit
	face          text.Face
	smallFace     text.Face
}

// NewGame wires the particle background, the page shell and the watchers
// from cfg. cfgPath is reloaded when it changes on disk.
func NewGame(cfg *config.Config, cfgPath string) (*Game, error) {
	site, err := content.LoadSite(cfg.ContentDir)
	if err != nil {
		return nil, err
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	g := &Game{
		cfg:       cfg,
		cfgPath:   cfgPath,
		bus:       event.NewBus(),
		canvas:    render.NewCanvas(cfg.Window.Width, cfg.Window.Height),
		page:      newPage(site, h),
		width:     w,
		height:    h,
		face:      &text.GoTextFace{Source: src, Size: 18},
		smallFace: &text.GoTextFace{Source: src, Size: 13},
	}

	prefPath := cfg.ThemeFile
	if prefPath == "" {
		prefPath = theme.DefaultPath()
	}
	g.themes = theme.NewStore(prefPath)
	name, err := g.themes.Load()
	if err != nil {
		log.Printf("theme: %v", err)
	}
	g.theme = shell.NewThemeState(name)

	// The first poll publishes the focus state again if this guess was wrong.
	g.input.focused = ebiten.IsFocused()
	g.motion = shell.NewMotion(cfg.Motion, g.canvas, g.bus, w, h, g.input.focused)
	g.motion.SetPalette(g.theme.Current().Particles)
	g.motion.Loop().OnChange(func(s loop.State) {
		if g.cfg.Debug {
			log.Printf("particle loop %s", s)
		}
	})
	g.subs = append(g.subs,
		g.bus.Subscribe(event.Resize, g.onResize),
		g.bus.Subscribe(event.Scroll, func(e event.Event) { g.page.scroller.ScrollBy(e.Y) }),
		g.bus.Subscribe(event.Visibility, func(e event.Event) { g.motion.SetVisible(e.Visible) }),
		g.bus.Subscribe(event.ThemeChanged, g.onThemeChanged),
	)

	if cfg.Watch {
		g.startWatcher()
	}

	return g, nil
}

func (g *Game) startWatcher() {
	dirs := []string{filepath.Dir(g.cfgPath)}
	if info, err := os.Stat(g.cfg.ContentDir); err == nil && info.IsDir() {
		dirs = append(dirs, g.cfg.ContentDir)
	}
	w, err := config.NewWatcher(dirs...)
	if err != nil {
		log.Printf("watch: %v", err)
		return
	}
	g.watcher = w
}

func frameTime() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

func (g *Game) Update() error {
	dt := frameTime()

	g.pollInput()
	g.bus.Dispatch()

	if err := g.motion.Step(); err != nil {
		return err
	}

	if g.theme.Fading() {
		settled := g.theme.Advance(dt)
		g.motion.SetPalette(g.theme.Current().Particles)
		// The panel is colored when built; rebuild it in the final theme.
		if settled && g.modal != nil {
			g.openProject(g.project)
		}
	}

	g.page.update(dt)

	kept := g.toasts[:0]
	for _, n := range g.toasts {
		n.Advance(dt)
		if !n.Expired() {
			kept = append(kept, n)
		}
	}
	g.toasts = kept

	if g.watcher != nil {
		g.reload(g.watcher.Poll())
	}

	if g.modal != nil {
		g.modal.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.Current().Particles.Background)

	if g.motion.Shown() {
		if g.motion.Redraw() {
			g.motion.Field().Draw()
		}
		screen.DrawImage(g.canvas.Image(), nil)
	}

	g.drawOverlay(screen)

	if g.modal != nil {
		g.modal.Draw(screen)
	}

	if g.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  loop: %s  frames: %d  particles: %d  links: %d",
			ebiten.ActualFPS(), g.motion.Loop().State(), g.motion.Loop().Frames(), g.motion.Field().Len(), len(g.motion.Field().Connections())))
	}
}

// LayoutF follows the window size; a change is published as a resize.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.bus.Push(event.Event{Type: event.Resize, X: outsideWidth, Y: outsideHeight})
		g.width, g.height = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the watcher and every event subscription.
func (g *Game) Close() {
	if g == nil {
		return
	}
	g.motion.Close()
	for _, sub := range g.subs {
		sub.Close()
	}
	g.subs = nil
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watch: close: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) onResize(e event.Event) {
	g.motion.Resize(e.X, e.Y)
	g.page.resize(e.Y)
}

func (g *Game) onThemeChanged(e event.Event) {
	if next, ok := e.Data.(theme.Name); ok {
		g.theme.Change(next)
	}
}

func (g *Game) toggleTheme() {
	next := theme.Toggle(g.theme.Name())
	if err := g.themes.Save(next); err != nil {
		log.Printf("theme: %v", err)
	}
	g.bus.Push(event.Event{Type: event.ThemeChanged, Data: next})
}

func (g *Game) notify(msg string, kind contact.Kind) {
	g.toasts = append(g.toasts, contact.NewNotification(msg, kind))
}

// reload applies changes to the config file or the site catalog.
func (g *Game) reload(paths []string) {
	for _, p := range paths {
		switch filepath.Base(p) {
		case filepath.Base(g.cfgPath):
			g.reloadConfig()
		case content.SiteFile:
			site, err := content.LoadSite(g.cfg.ContentDir)
			if err != nil {
				log.Printf("content: reload: %v", err)
				g.notify("Could not reload site content", contact.Error)
				continue
			}
			g.page.setSite(site)
			if g.modal != nil {
				g.openProject(g.project)
			}
			g.notify("Site content reloaded", contact.Info)
		}
	}
}

func (g *Game) reloadConfig() {
	cfg, err := config.Load(g.cfgPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.Printf("config: reload: %v", err)
		return
	}
	cfg.Debug = cfg.Debug || debug

	g.cfg = cfg
	g.motion.Apply(cfg.Motion)
}
