package gridmenu

import (
	"image"
	"image/draw"
	"time"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/canvas"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
)

type MenuAction int

const (
	MenuActionSelected MenuAction = iota
	MenuActionTriggered
)

// MenuResult is how a session ended.
type MenuResult struct {
	Selected int
	Item     *Item
	Action   MenuAction
}

type RunOptions struct {
	// ActionButton ends the run with MenuActionTriggered.
	ActionButton      constants.VirtualButton
	DisableBackButton bool
	// ShowPageBackground fills the frame with the theme's page gradient.
	ShowPageBackground bool
	// FooterHelpItems are button hints drawn along the bottom of the frame.
	FooterHelpItems []FooterHelpItem
	// EvdevPath, when set, reads the pad directly from that input device
	// in addition to SDL events.
	EvdevPath string
}

func DefaultRunOptions() RunOptions {
	return RunOptions{
		ActionButton:       constants.VirtualButtonUnassigned,
		ShowPageBackground: true,
	}
}

// Session drives a menu from virtual button input and composes frames.
// It holds no platform state so any presenter can use it.
type Session struct {
	menu    *Menu
	nav     *Navigator
	options RunOptions

	frame  *canvas.Surface
	page   *canvas.Surface
	theme  internal.Theme
	dirty  bool
	done   bool
	result MenuResult
	err    error
}

func NewSession(menu *Menu, frameSize image.Point, options RunOptions) *Session {
	s := &Session{
		menu:    menu,
		nav:     NewNavigator(),
		options: options,
		frame:   canvas.NewSurface(frameSize.X, frameSize.Y),
		dirty:   true,
		result:  MenuResult{Selected: InvalidItem},
	}

	s.theme = internal.GetTheme()
	if s.theme.IsZero() {
		s.theme = internal.DefaultTheme
	}
	if options.ShowPageBackground {
		s.page = menu.Cache().Page(frameSize.X, frameSize.Y, s.theme.PageFromColor, s.theme.PageToColor).Ref()
	}

	menu.Redraw()
	return s
}

func (s *Session) Menu() *Menu {
	return s.menu
}

func (s *Session) Navigator() *Navigator {
	return s.nav
}

// Press handles a button going down.
func (s *Session) Press(now time.Time, button constants.VirtualButton) {
	if s.done {
		return
	}

	if dir, ok := DirectionFromButton(button); ok {
		if s.nav.Press(now, dir) {
			s.move(dir)
		}
		return
	}

	switch {
	case button == constants.VirtualButtonA:
		sel := s.menu.Selection()
		if sel == InvalidItem || !s.menu.Item(sel).Enabled() {
			return
		}
		s.finish(MenuActionSelected, nil)
	case button == constants.VirtualButtonB && !s.options.DisableBackButton:
		s.finish(MenuActionSelected, ErrCancelled)
	case s.options.ActionButton != constants.VirtualButtonUnassigned && button == s.options.ActionButton:
		s.finish(MenuActionTriggered, nil)
	}
}

func (s *Session) Release(button constants.VirtualButton) {
	if dir, ok := DirectionFromButton(button); ok {
		s.nav.Release(dir)
	}
}

// Tick repeats a held direction when it is due.
func (s *Session) Tick(now time.Time) {
	if s.done {
		return
	}
	if dir, ok := s.nav.Tick(now); ok {
		s.move(dir)
	}
}

// Cancel ends the session as if back had been pressed.
func (s *Session) Cancel() {
	s.finish(MenuActionSelected, ErrCancelled)
}

func (s *Session) move(dir Direction) {
	if _, dirtyRect := s.menu.HandleInput(dir); !dirtyRect.Empty() {
		s.dirty = true
	}
}

func (s *Session) finish(action MenuAction, err error) {
	if s.done {
		return
	}
	s.done = true
	s.err = err
	s.result.Action = action
	s.result.Selected = s.menu.Selection()
	s.result.Item = s.menu.Item(s.result.Selected)
}

func (s *Session) Done() bool {
	return s.done
}

func (s *Session) Result() (*MenuResult, error) {
	return &s.result, s.err
}

// Frame returns the composed frame and whether it changed since the last
// call. The menu surface is centred on the page background.
func (s *Session) Frame() (*canvas.Surface, bool) {
	if !s.dirty {
		return s.frame, false
	}
	s.dirty = false

	if s.page != nil {
		s.frame.PaintAt(s.page, s.frame.Bounds().Min, draw.Src)
	} else {
		s.frame.Fill(s.frame.Bounds(), image.Black)
	}

	surface := s.menu.Surface()
	defer surface.Release()
	s.frame.PaintAt(surface, MenuOrigin(s.frame.Bounds().Size(), surface.Bounds().Size()), draw.Over)

	if len(s.options.FooterHelpItems) > 0 {
		drawFooter(s.frame, s.menu.text, s.options.FooterHelpItems, s.theme)
	}

	return s.frame, true
}

// MenuOrigin centres a menu of size menu in a frame of size frame.
func MenuOrigin(frame, menu image.Point) image.Point {
	return image.Pt((frame.X-menu.X)/2, (frame.Y-menu.Y)/2)
}

func (s *Session) Close() {
	if s.page != nil {
		s.page.Release()
		s.page = nil
	}
	if s.frame != nil {
		s.frame.Release()
		s.frame = nil
	}
}
