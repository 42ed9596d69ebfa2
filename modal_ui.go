package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strings"
	"sync"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/folio/contact"
	"github.com/milk9111/folio/content"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

const modalWrap = 72

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// openProject shows the detail panel for id. An unknown id closes any
// open panel instead.
func (g *Game) openProject(id string) {
	p, err := g.page.site.Lookup(id)
	if err != nil {
		if !errors.Is(err, content.ErrUnknownProject) {
			log.Printf("project: %v", err)
		}
		g.closeProject()
		return
	}
	g.project = id
	g.modal = newProjectUI(g, p)
}

func (g *Game) closeProject() {
	g.modal = nil
	g.project = ""
}

// copyLink puts url on the system clipboard and reports the outcome as a
// toast.
func (g *Game) copyLink(url string) {
	clipboardOnce.Do(func() { clipboardErr = clipboard.Init() })
	if clipboardErr != nil {
		log.Printf("clipboard: %v", clipboardErr)
		g.notify("Clipboard is not available", contact.Error)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(url))
	g.notify("Link copied to clipboard", contact.Success)
}

// newProjectUI builds a centered detail panel for p with Close and copy
// buttons, colored from the current theme.
func newProjectUI(g *Game, p content.Project) *ebitenui.UI {
	pal := g.theme.Current()
	panelImg := imageui.NewNineSliceColor(pal.Panel)
	btnImg := imageui.NewNineSliceColor(pal.Particles.Accent)

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: pal.Particles.Background}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	label := func(s string, c color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(s, &face, c),
			widget.TextOpts.WidgetOpts(center),
		)
	}
	button := func(s string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(s, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(g.width/2), int(g.height/2)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(label(p.Title, pal.Particles.Accent))
	panel.AddChild(label(wrap(p.Description, modalWrap), pal.Text))
	panel.AddChild(label("Key Features", pal.Particles.Secondary))
	panel.AddChild(label(bullets(p.Features), pal.Text))
	panel.AddChild(label("Technologies Used", pal.Particles.Secondary))
	panel.AddChild(label(strings.Join(p.Tech, " · "), pal.Text))
	panel.AddChild(label("Challenges & Solutions", pal.Particles.Secondary))
	panel.AddChild(label(wrap(p.Challenges, modalWrap), pal.Text))

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(center),
	)
	if p.GithubURL != "" {
		url := p.GithubURL
		buttons.AddChild(button("Copy GitHub link", func() { g.copyLink(url) }))
	}
	if p.LiveURL != "" {
		url := p.LiveURL
		buttons.AddChild(button("Copy demo link", func() { g.copyLink(url) }))
	}
	buttons.AddChild(button("Close", g.closeProject))
	panel.AddChild(buttons)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("- %s", it))
	}
	return strings.Join(lines, "\n")
}

// wrap breaks s into lines of at most width runes on word boundaries.
func wrap(s string, width int) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(s) {
		l := len([]rune(word))
		switch {
		case n == 0:
		case n+1+l > width:
			b.WriteByte('\n')
			n = 0
		default:
			b.WriteByte(' ')
			n++
		}
		b.WriteString(word)
		n += l
	}
	return b.String()
}
