package shell

import (
	"time"

	"github.com/milk9111/folio/theme"
)

// ThemeState is the theme on screen. A change fades from whatever is
// showing, so toggling again mid-fade reverses from the blend.
type ThemeState struct {
	name    theme.Name
	current theme.Palette
	fade    *theme.Transition
}

func NewThemeState(n theme.Name) *ThemeState {
	return &ThemeState{name: n, current: theme.PaletteFor(n)}
}

// Name is the theme being shown or faded to.
func (s *ThemeState) Name() theme.Name { return s.name }

func (s *ThemeState) Current() theme.Palette { return s.current }

func (s *ThemeState) Fading() bool { return s.fade != nil }

// Change starts a fade to next. It reports false when next is already the
// target.
func (s *ThemeState) Change(next theme.Name) bool {
	if next == s.name {
		return false
	}
	s.fade = theme.NewTransitionFrom(s.current, next)
	s.name = next
	return true
}

// Advance moves a running fade forward and reports whether it finished on
// this step.
func (s *ThemeState) Advance(dt time.Duration) bool {
	if s.fade == nil {
		return false
	}
	s.current = s.fade.Advance(dt)
	if !s.fade.Done() {
		return false
	}
	s.fade = nil
	return true
}
